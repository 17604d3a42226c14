package auth

import (
	"context"
	"strings"

	autherrors "go-empdir/internal/auth/errors"
	"go-empdir/internal/employee"
	"go-empdir/internal/security"
	"go-empdir/internal/shared/apperror"

	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

type service struct {
	employeeRepo employee.Repository
	hasher       security.PasswordHasher
	tokens       security.TokenService
	logger       *zap.Logger
}

func NewService(
	employeeRepo employee.Repository,
	hasher security.PasswordHasher,
	tokens security.TokenService,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		employeeRepo: employeeRepo,
		hasher:       hasher,
		tokens:       tokens,
		logger:       l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return LoginResponse{}, apperror.RequiredField("email")
	}
	if req.Password == "" {
		return LoginResponse{}, apperror.RequiredField("password")
	}

	empl, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("login lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	// An unknown email and a wrong password are indistinguishable to the
	// caller.
	if empl == nil || !s.hasher.Verify(req.Password, empl.Password) {
		s.logger.Warn("login rejected", zap.String("email", email))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(empl.ID, empl.Email, empl.Role)
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("login success", zap.String("employee_id", empl.ID.String()))

	return LoginResponse{
		ID:          empl.ID.String(),
		FirstName:   empl.FirstName,
		LastName:    empl.LastName,
		Email:       empl.Email,
		Role:        empl.Role.String(),
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}
