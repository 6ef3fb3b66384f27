package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	portssvc "github.com/SscSPs/profit_first_app/internal/core/ports/services"
	"github.com/SscSPs/profit_first_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	WorkspaceAuthorizer portssvc.WorkspaceAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks that userID may perform action on companyID.
// Without an authorizer every action is allowed, which only tests rely on.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, companyID string, action domain.WorkspaceAction) error {
	if s.WorkspaceAuthorizer != nil {
		_, err := s.WorkspaceAuthorizer.AuthorizeCompanyAction(ctx, userID, companyID, action)
		return err
	}
	s.LogDebug(ctx, "No workspace authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
		slog.String("action", string(action)))
	return nil
}
