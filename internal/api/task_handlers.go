package api

import (
	"log/slog"
	"net/http"

	"taskmanager/internal/errors"
	"taskmanager/internal/services"

	"github.com/gin-gonic/gin"
)

// listAllTasks handles GET /api/tasks (admin only).
func (s *Server) listAllTasks(c *gin.Context) {
	result, err := s.service.ListTasksAll(c.Request.Context(), currentCaller(c))
	if err != nil {
		writeError(c, s.logger, err)
		return
	}
	c.JSON(http.StatusOK, result.Tasks)
}

// listTasks handles GET /api/task with filter parameters.
func (s *Server) listTasks(c *gin.Context) {
	params := requestParams(c)

	result, err := s.service.ListTasks(c.Request.Context(), currentCaller(c), services.ListParams{
		Project:  params["project"],
		Name:     params["name"],
		Status:   params["status"],
		Username: params["username"],
	})
	if err != nil {
		writeError(c, s.logger, err)
		return
	}
	c.JSON(http.StatusOK, result.Tasks)
}

// createTask handles POST /api/task (admin only).
func (s *Server) createTask(c *gin.Context) {
	params := requestParams(c)

	result, err := s.service.CreateTask(c.Request.Context(), currentCaller(c), services.CreateInput{
		Project:     params["project"],
		Name:        params["name"],
		Description: params["description"],
		Status:      params["status"],
		Username:    optional(params, "username"),
	})
	if err != nil {
		writeError(c, s.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": result.Task})
}

// editTask handles PUT /api/task. Regular users can change status only.
func (s *Server) editTask(c *gin.Context) {
	params := requestParams(c)

	id, present := taskID(params)
	if present && id == nil {
		writeError(c, s.logger, errors.NewValidationError("invalid task id", nil))
		return
	}

	result, err := s.service.EditTask(c.Request.Context(), currentCaller(c), services.EditInput{
		ID:          id,
		Project:     optional(params, "project"),
		Name:        optional(params, "name"),
		Description: optional(params, "description"),
		Status:      optional(params, "status"),
		Username:    optional(params, "username"),
	})
	if err != nil {
		writeError(c, s.logger, err)
		return
	}

	if result.Task == nil {
		// Nothing applicable to change
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, result.Task)
}

// deleteTask handles DELETE /api/task (admin only).
func (s *Server) deleteTask(c *gin.Context) {
	params := requestParams(c)

	id, present := taskID(params)
	if present && id == nil {
		writeError(c, s.logger, errors.NewValidationError("invalid task id", nil))
		return
	}

	if _, err := s.service.DeleteTask(c.Request.Context(), currentCaller(c), id); err != nil {
		writeError(c, s.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps an application error to its HTTP response and logs
// what the shell is responsible for logging.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeValidation:
			status = http.StatusBadRequest
		case errors.ErrorTypeNotFound:
			status = http.StatusNotFound
		case errors.ErrorTypePermission:
			status = http.StatusForbidden
		case errors.ErrorTypeDatabase:
			status = http.StatusInternalServerError
		}
	}

	if errors.ShouldLogError(err) {
		logger.Error("request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("code", errors.GetErrorCode(err)),
			slog.String("error", err.Error()),
		)
	}

	c.JSON(status, errorBody(status, errors.GetUserMessage(err)))
}

// errorBody is the uniform error payload shape.
func errorBody(status int, message string) gin.H {
	return gin.H{
		"error":   http.StatusText(status),
		"message": message,
		"status":  status,
	}
}
