package middleware

import (
	"log/slog"
	"strings"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// ActiveCompanyIDHeader names the company the dashboard currently shows.
	ActiveCompanyIDHeader   = "X-Active-Company-ID"
	ActiveCompanyNameHeader = "X-Active-Company-Name"
)

// ActiveCompanyMiddleware reads the active company headers into the request
// context so handlers can fall back to it when a route has no company id.
func ActiveCompanyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(ActiveCompanyIDHeader))
		if id == "" {
			c.Next()
			return
		}
		company := domain.ActiveCompany{
			ID:   id,
			Name: strings.TrimSpace(c.GetHeader(ActiveCompanyNameHeader)),
		}
		ctx := WithActiveCompany(c.Request.Context(), company)
		logger := GetLoggerFromCtx(ctx).With(slog.String("active_company_id", id))
		c.Request = c.Request.WithContext(WithLogger(ctx, logger))
		c.Next()
	}
}
