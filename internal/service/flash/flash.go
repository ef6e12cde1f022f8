package flash

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/phrazzld/mocksy/internal/config"
	"github.com/phrazzld/mocksy/internal/platform/logger"
)

// CookieName is the cookie holding the pending notification.
const CookieName = "mocksy_flash"

// Kind distinguishes success and error notifications.
type Kind string

// Notification kinds.
const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Flash is a single pending notification.
type Flash struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"msg"`
}

// flashClaims defines the structure of the signed token
type flashClaims struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"msg"`
	jwt.RegisteredClaims
}

// Service signs, verifies and transports flash notifications.
type Service struct {
	signingKey []byte
	ttl        time.Duration
	secure     bool
	timeFunc   func() time.Time // Injectable for testing
}

// NewService creates a flash Service from configuration.
func NewService(cfg config.FlashConfig) (*Service, error) {
	if len(cfg.Secret) < 32 {
		return nil, ErrSecretTooShort
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &Service{
		signingKey: []byte(cfg.Secret),
		ttl:        ttl,
		secure:     cfg.CookieSecure,
		timeFunc:   time.Now,
	}, nil
}

// Encode signs f into a token valid for the configured TTL.
func (s *Service) Encode(ctx context.Context, f Flash) (string, error) {
	now := s.timeFunc()

	claims := flashClaims{
		Kind:    f.Kind,
		Message: f.Message,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		logger.FromContext(ctx).Error("failed to sign flash token",
			"error", err,
			"kind", f.Kind)
		return "", fmt.Errorf("failed to sign flash token: %w", err)
	}
	return signed, nil
}

// Decode verifies tokenString and returns the flash it carries.
func (s *Service) Decode(ctx context.Context, tokenString string) (*Flash, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	token, err := jwt.ParseWithClaims(
		tokenString,
		&flashClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("flash token expired", "error", err)
			return nil, ErrExpiredFlash
		}
		log.Debug("flash token rejected", "error", err)
		return nil, ErrInvalidFlash
	}

	claims, ok := token.Claims.(*flashClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidFlash
	}
	if claims.Kind != KindSuccess && claims.Kind != KindError {
		log.Debug("flash token has unknown kind", "kind", claims.Kind)
		return nil, ErrInvalidFlash
	}

	return &Flash{Kind: claims.Kind, Message: claims.Message}, nil
}

// Set stores f in the flash cookie on w.
func (s *Service) Set(ctx context.Context, w http.ResponseWriter, f Flash) error {
	token, err := s.Encode(ctx, f)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the pending flash from r, if any, and clears the cookie.
// An invalid or expired cookie is cleared and reported as no flash.
func (s *Service) Pop(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	f, err := s.Decode(r.Context(), c.Value)
	if err != nil {
		return nil
	}
	return f
}
