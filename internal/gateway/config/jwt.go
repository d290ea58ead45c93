package config

// JWTConfig - секрет, общий с сервисом пользователей. Шлюз токены только проверяет.
type JWTConfig struct {
	SecretKey string `yaml:"secret_key" env:"GATEWAY_JWT_SECRET_KEY"`
}
