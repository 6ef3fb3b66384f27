package middleware

import (
	"context"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// userIDKey holds the authenticated user's ID in the request context.
	userIDKey = contextKey("userID")
	// activeCompanyKey holds the domain.ActiveCompany selected by the caller.
	activeCompanyKey = contextKey("activeCompany")
)

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the request.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// WithActiveCompany returns a copy of ctx carrying the active company.
func WithActiveCompany(ctx context.Context, company domain.ActiveCompany) context.Context {
	return context.WithValue(ctx, activeCompanyKey, company)
}

// GetActiveCompanyFromContext returns the company selected for this request, if any.
func GetActiveCompanyFromContext(ctx context.Context) (domain.ActiveCompany, bool) {
	company, ok := ctx.Value(activeCompanyKey).(domain.ActiveCompany)
	if !ok || company.ID == "" {
		return domain.ActiveCompany{}, false
	}
	return company, true
}
