// Package token выпускает и проверяет подписанные HS256 токены сессии.
// Проверка не имеет состояния и безопасна для параллельного использования.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"plazausers/pkg/identity"
	"plazausers/pkg/logger"
)

const (
	methodIssue    = "Issue"
	methodValidate = "Validate"

	msgIssuingToken    = "issuing token"
	msgTokenIssued     = "token issued"
	msgTokenRejected   = "token rejected"
	msgTokenValidated  = "token validated"
	errSigningToken    = "error signing token"
	errCtxIssueToken   = "issuing token"
	errCtxParsingToken = "parsing token"
)

var (
	ErrEmptySecret      = errors.New("empty secret key")
	ErrNegativeTTL      = errors.New("negative token ttl")
	ErrShortTTL         = errors.New("token ttl must be at least one second")
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrMissingClaim     = errors.New("required claim is missing")
)

// MinTTL - минимальное ненулевое время жизни. exp и iat хранятся с точностью до секунды.
const MinTTL = time.Second

// Claims - полезная нагрузка токена. sub совпадает с email.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Identity преобразует claims в личность. Неизвестная роль или отсутствующие
// userId и email делают токен недействительным.
func (c *Claims) Identity() (identity.Identity, error) {
	if c.UserID <= 0 {
		return identity.Identity{}, fmt.Errorf("%w: %w: userId", ErrInvalidToken, ErrMissingClaim)
	}
	if c.Email == "" {
		return identity.Identity{}, fmt.Errorf("%w: %w: email", ErrInvalidToken, ErrMissingClaim)
	}
	role, err := identity.ParseRole(c.Role)
	if err != nil {
		return identity.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return identity.Identity{UserID: c.UserID, Email: c.Email, Role: role}, nil
}

// Option настраивает Service.
type Option func(*Service)

// WithTimeFunc подменяет источник текущего времени.
func WithTimeFunc(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service выпускает и проверяет токены одним симметричным ключом.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration, opts ...Option) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl < 0 {
		return nil, ErrNegativeTTL
	}
	if ttl > 0 && ttl < MinTTL {
		return nil, fmt.Errorf("%w: %s", ErrShortTTL, ttl)
	}
	s := &Service{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// ExpirationMs возвращает время жизни токена в миллисекундах.
func (s *Service) ExpirationMs() int64 {
	return s.ttl.Milliseconds()
}

// Issue подписывает токен для id и возвращает момент его истечения.
func (s *Service) Issue(ctx context.Context, id identity.Identity) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.Int64("userID", id.UserID),
	)
	log.Debug(ctx, msgIssuingToken)

	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		UserID: id.UserID,
		Email:  id.Email,
		Role:   id.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxIssueToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return signed, expiresAt, nil
}

// Validate проверяет подпись, алгоритм и срок действия токена.
// Токен, у которого exp не позже iat, считается недействительным.
func (s *Service) Validate(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidate))

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", errCtxParsingToken, ErrExpiredToken)
		}
		return nil, fmt.Errorf("%s: %w: %w", errCtxParsingToken, ErrInvalidToken, err)
	}
	if !tok.Valid {
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, ErrInvalidToken)
	}
	if claims.IssuedAt != nil && !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		log.Debug(ctx, msgTokenRejected, zap.String("reason", "zero lifetime"))
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, ErrExpiredToken)
	}

	log.Debug(ctx, msgTokenValidated, zap.Int64("userID", claims.UserID))
	return claims, nil
}

// Authenticate проверяет токен и возвращает личность субъекта.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (identity.Identity, error) {
	claims, err := s.Validate(ctx, tokenString)
	if err != nil {
		return identity.Identity{}, err
	}
	return claims.Identity()
}

// IsValid сообщает, прошел ли токен проверку. Ошибки не возвращаются.
func (s *Service) IsValid(ctx context.Context, tokenString string) bool {
	_, err := s.Validate(ctx, tokenString)
	return err == nil
}

// ExtractUserID возвращает userId из действительного токена. Нулевой userId
// считается отсутствующим.
func (s *Service) ExtractUserID(ctx context.Context, tokenString string) (int64, bool) {
	claims, err := s.Validate(ctx, tokenString)
	if err != nil || claims.UserID <= 0 {
		return 0, false
	}
	return claims.UserID, true
}

func (s *Service) ExtractEmail(ctx context.Context, tokenString string) (string, bool) {
	claims, err := s.Validate(ctx, tokenString)
	if err != nil || claims.Email == "" {
		return "", false
	}
	return claims.Email, true
}

func (s *Service) ExtractRole(ctx context.Context, tokenString string) (identity.Role, bool) {
	claims, err := s.Validate(ctx, tokenString)
	if err != nil {
		return "", false
	}
	role, err := identity.ParseRole(claims.Role)
	if err != nil {
		return "", false
	}
	return role, true
}
