package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// issueToken handles POST /api/tokens. Credentials arrive via HTTP basic
// auth; the response carries the opaque bearer token for later requests.
func (s *Server) issueToken(c *gin.Context) {
	username, password, ok := c.Request.BasicAuth()
	if !ok {
		c.Header("WWW-Authenticate", `Basic realm="taskmanager"`)
		c.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "basic authentication required"))
		return
	}

	user, err := s.tokens.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		writeError(c, s.logger, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "invalid credentials"))
		return
	}

	token, err := s.tokens.IssueToken(c.Request.Context(), user)
	if err != nil {
		writeError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// revokeToken handles DELETE /api/tokens, invalidating the presented
// token immediately.
func (s *Server) revokeToken(c *gin.Context) {
	user, err := s.tokens.ResolveUser(c.Request.Context(), bearerToken(c))
	if err != nil {
		writeError(c, s.logger, err)
		return
	}
	if user == nil {
		unauthorized(c)
		return
	}

	if err := s.tokens.RevokeToken(c.Request.Context(), user); err != nil {
		writeError(c, s.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
