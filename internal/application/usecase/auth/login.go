package auth

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const AdminSubject = "admin"

var (
	ErrInvalidCredentials = errors.New("password is incorrect")
)

// LoginUseCase checks the single site-owner password and issues an admin token.
type LoginUseCase struct {
	passwordHash string
	jwtSvc       *auth.JWTService
	logger       logger.Logger
}

func NewLoginUseCase(passwordHash string, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		passwordHash: passwordHash,
		jwtSvc:       jwtSvc,
		logger:       log,
	}
}

type LoginInput struct {
	Password string
}

type LoginOutput struct {
	AccessToken string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	_, span := tracer.Start(ctx, "Execute")
	defer span.End()

	if !uc.jwtSvc.Enabled() || uc.passwordHash == "" {
		err := apperror.NewAppError(apperror.ErrNotFound, "Admin is disabled", "admin credentials are not configured", auth.ErrDisabled)
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, uc.passwordHash) {
		uc.logger.Warn("admin login rejected")
		err := apperror.NewUnauthorized("incorrect password", ErrInvalidCredentials)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(AdminSubject, auth.RoleAdmin)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("subject", AdminSubject))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	return &LoginOutput{AccessToken: token}, nil
}
