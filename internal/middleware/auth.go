package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// errNoToken is returned by parseBearer when the request carries no Authorization header.
var errNoToken = errors.New("authorization header missing")

// tokenError is a bearer token problem that should be reported to the caller.
type tokenError struct {
	msg string
}

func (e *tokenError) Error() string { return e.msg }

// parseBearer extracts and validates the bearer token, returning the subject.
func parseBearer(c *gin.Context, jwtSecret, issuer string) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errNoToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", &tokenError{msg: "Authorization header format must be Bearer {token}"}
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	}, opts...)
	if err != nil {
		msg := "Invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "Token has expired"
		} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
			msg = "Token not valid yet"
		}
		return "", &tokenError{msg: msg}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", &tokenError{msg: "Invalid token claims"}
	}
	return claims.Subject, nil
}

// setUser stores the user id and a logger enriched with it in the request context.
func setUser(c *gin.Context, userID string) {
	ctx := WithUserID(c.Request.Context(), userID)
	logger := GetLoggerFromCtx(ctx).With(slog.String("user_id", userID))
	c.Request = c.Request.WithContext(WithLogger(ctx, logger))
}

// AuthMiddleware creates a Gin middleware handler that requires a valid JWT.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		userID, err := parseBearer(c, jwtSecret, issuer)
		if err != nil {
			logger.Warn("Authentication failed", slog.String("error", err.Error()))
			msg := "Authorization header required"
			var tErr *tokenError
			if errors.As(err, &tErr) {
				msg = tErr.msg
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		setUser(c, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware identifies the caller when a bearer token is present
// and lets anonymous requests through. A present but invalid token is still
// rejected.
func OptionalAuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseBearer(c, jwtSecret, issuer)
		switch {
		case errors.Is(err, errNoToken):
			c.Next()
			return
		case err != nil:
			GetLoggerFromCtx(c.Request.Context()).Warn("Optional authentication failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		setUser(c, userID)
		c.Next()
	}
}
