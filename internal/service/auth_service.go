package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"servizi-facili-be/internal/config"
	"servizi-facili-be/internal/dto"
	"servizi-facili-be/internal/pkg/logger"
)

var ErrInvalidCredentials = errors.New("auth: invalid credentials")

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	cfg          config.AuthConfig
	passwordHash []byte
	logger       logger.ILogger
}

// NewAuthService hashes the configured demo password up front so the
// plaintext never sticks around past startup.
func NewAuthService(cfg config.AuthConfig, log logger.ILogger) (IAuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &authService{
		cfg:          cfg,
		passwordHash: hash,
		logger:       log,
	}, nil
}

func (s *authService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if !strings.EqualFold(req.Email, s.cfg.DemoUser) {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  req.Email,
		"name": s.cfg.DemoName,
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.JwtSecret))
	if err != nil {
		s.logger.Error("auth", "Failed to sign token", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	s.logger.Info("auth", "User logged in", map[string]interface{}{"user": req.Email})
	return &dto.LoginResponse{Token: signed, Name: s.cfg.DemoName}, nil
}
