package config

import "time"

// JWTConfig содержит настройки токенов и хеширования паролей.
type JWTConfig struct {
	SecretKey    string `yaml:"secret_key" env:"USERS_JWT_SECRET_KEY"`
	ExpirationMs int64  `yaml:"expiration_ms" env:"USERS_JWT_EXPIRATION_MS" env-default:"86400000"`
	BCryptCost   int    `yaml:"bcrypt_cost" env:"USERS_BCRYPT_COST" env-default:"10"`
}

// GetTTL возвращает время жизни токена.
func (c *JWTConfig) GetTTL() time.Duration {
	return time.Duration(c.ExpirationMs) * time.Millisecond
}
