package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/profit_first_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const companyIDParam = "company_id"

// requestScope is the caller and company a company-scoped request acts on.
type requestScope struct {
	userID    string
	companyID string
	logger    *slog.Logger
}

// resolveScope reads the user id set by AuthMiddleware and the target
// company. The path id wins; routes without one use the active company
// header. It writes the error response and returns false when either is missing.
func resolveScope(c *gin.Context) (requestScope, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return requestScope{}, false
	}

	companyID := c.Param(companyIDParam)
	if companyID == "" {
		if active, ok := middleware.GetActiveCompanyFromContext(c.Request.Context()); ok {
			companyID = active.ID
		}
	}
	if companyID == "" {
		logger.Warn("No company selected for request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select a company before continuing."})
		return requestScope{}, false
	}

	return requestScope{
		userID:    userID,
		companyID: companyID,
		logger:    logger.With(slog.String("user_id", userID), slog.String("company_id", companyID)),
	}, true
}
