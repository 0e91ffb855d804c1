package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"taskmanager/internal/auth"
	"taskmanager/internal/domain"

	"github.com/gin-gonic/gin"
)

// callerKey is the gin context key the resolved caller is stored under.
const callerKey = "caller"

// RequestLogger logs HTTP request/response metadata.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)

		logger.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.String("client_ip", c.ClientIP()),
			slog.String("latency", latency.String()),
		)
	}
}

// TokenAuth resolves the bearer token and stores the caller identity in
// the request context. Requests without a valid, unexpired token are
// rejected before any task operation runs.
func TokenAuth(tokens *auth.TokenService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c)
			return
		}

		caller, err := tokens.ResolveCaller(c.Request.Context(), token)
		if err != nil {
			logger.Error("token resolution failed", slog.String("error", err.Error()))
			writeError(c, logger, err)
			c.Abort()
			return
		}
		if caller == nil {
			unauthorized(c)
			return
		}

		c.Set(callerKey, *caller)
		c.Next()
	}
}

// bearerToken extracts the token from the Authorization header, returning
// an empty string when the header is missing or malformed.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "invalid or missing token"))
	c.Abort()
}

// currentCaller returns the caller stored by TokenAuth.
func currentCaller(c *gin.Context) domain.Caller {
	return c.MustGet(callerKey).(domain.Caller)
}
