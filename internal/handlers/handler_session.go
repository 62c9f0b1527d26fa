package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ninebox-labs/talent_review_app/internal/apperrors"
	"github.com/ninebox-labs/talent_review_app/internal/core/domain"
	portssvc "github.com/ninebox-labs/talent_review_app/internal/core/ports/services"
	"github.com/ninebox-labs/talent_review_app/internal/dto"
	"github.com/ninebox-labs/talent_review_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// sessionHandler handles HTTP requests related to review sessions.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

// newSessionHandler creates a new sessionHandler.
func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{
		sessionService: ss,
	}
}

// registerSessionRoutes registers all session-related routes. Performance,
// potential, and flags are only reachable through the move and flag routes;
// there is deliberately no general-purpose employee update that could skip
// the event ledger.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newSessionHandler(sessionService)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("/:userID", h.createSession)
		sessions.GET("/:userID", h.getSession)
		sessions.DELETE("/:userID", h.deleteSession)
		sessions.GET("/:userID/events", h.listEvents)
		sessions.PUT("/:userID/employees/:employeeID/position", h.moveEmployee)
		sessions.PUT("/:userID/employees/:employeeID/donut", h.moveEmployeeDonut)
		sessions.PUT("/:userID/employees/:employeeID/flags", h.updateFlags)
		sessions.PATCH("/:userID/employees/:employeeID", h.updateFields)
	}
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrStorage):
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// employeeIDParam parses the employeeID path parameter.
func employeeIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("employeeID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return 0, false
	}
	return id, true
}

// createSession godoc
// @Summary Create a review session
// @Description Creates a session for a user from an imported roster. Use replace=true to overwrite an existing session.
// @Tags sessions
// @Accept  json
// @Produce  json
// @Param   userID path string true "User ID"
// @Param   replace query bool false "Replace an existing session" default(false)
// @Param   session body dto.CreateSessionRequest true "Imported roster and source file metadata"
// @Success 201 {object} dto.CreateSessionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Session already exists"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /sessions/{userID} [post]
func (h *sessionHandler) createSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create session request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	replace := c.Query("replace") == "true"

	logger = logger.With(slog.String("user_id", userID))
	logger.Info("Received request to create session", slog.Int("employees", len(req.Employees)))

	sess, err := h.sessionService.CreateSession(c.Request.Context(), userID, req, replace)
	if err != nil {
		respondError(c, logger, err, "Failed to create session")
		return
	}

	logger.Info("Session created successfully", slog.String("session_id", sess.SessionID))
	c.JSON(http.StatusCreated, dto.CreateSessionResponse{SessionID: sess.SessionID})
}

// getSession godoc
// @Summary Get a session
// @Description Retrieves the full session for a user, including current employees and active events
// @Tags sessions
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{userID} [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	sess, err := h.sessionService.GetSession(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve session")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}

// deleteSession godoc
// @Summary Delete a session
// @Description Removes a user's session from memory and the durable store. Deletion is idempotent.
// @Tags sessions
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} dto.DeleteSessionResponse
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /sessions/{userID} [delete]
func (h *sessionHandler) deleteSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	deleted, err := h.sessionService.DeleteSession(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to delete session")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteSessionResponse{Deleted: deleted})
}

// listEvents godoc
// @Summary List active events
// @Description Returns the session's active events in insertion order, for the "what changed" display
// @Tags sessions
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} dto.ListEventsResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{userID}/events [get]
func (h *sessionHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	events, err := h.sessionService.ListEvents(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ListEventsResponse{Events: dto.ToEventResponses(events)})
}

// moveEmployee godoc
// @Summary Move an employee on the grid
// @Description Repositions an employee on the performance/potential grid and records the change
// @Tags sessions
// @Accept  json
// @Produce  json
// @Param   userID path string true "User ID"
// @Param   employeeID path int true "Employee ID"
// @Param   move body dto.MoveEmployeeRequest true "New performance and potential"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Session or employee not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /sessions/{userID}/employees/{employeeID}/position [put]
func (h *sessionHandler) moveEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}

	var req dto.MoveEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for move request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	emp, err := h.sessionService.MoveEmployee(c.Request.Context(), userID, employeeID,
		domain.Level(req.Performance), domain.Level(req.Potential))
	if err != nil {
		respondError(c, logger, err, "Failed to move employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(emp))
}

// moveEmployeeDonut godoc
// @Summary Move an employee on the donut
// @Description Repositions an employee on the donut calibration axis (1-9, 5 = center)
// @Tags sessions
// @Accept  json
// @Produce  json
// @Param   userID path string true "User ID"
// @Param   employeeID path int true "Employee ID"
// @Param   move body dto.MoveEmployeeDonutRequest true "New donut sub-position"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Session or employee not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /sessions/{userID}/employees/{employeeID}/donut [put]
func (h *sessionHandler) moveEmployeeDonut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}

	var req dto.MoveEmployeeDonutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for donut move request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	emp, err := h.sessionService.MoveEmployeeDonut(c.Request.Context(), userID, employeeID, req.DonutPosition)
	if err != nil {
		respondError(c, logger, err, "Failed to move employee on donut")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(emp))
}

// updateFlags godoc
// @Summary Replace an employee's flags
// @Description Replaces the flag set wholesale; each flag actually added or removed is recorded
// @Tags sessions
// @Accept  json
// @Produce  json
// @Param   userID path string true "User ID"
// @Param   employeeID path int true "Employee ID"
// @Param   flags body dto.UpdateFlagsRequest true "New flag set"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Session or employee not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /sessions/{userID}/employees/{employeeID}/flags [put]
func (h *sessionHandler) updateFlags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for flags request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	emp, err := h.sessionService.UpdateFlags(c.Request.Context(), userID, employeeID, req.Flags)
	if err != nil {
		respondError(c, logger, err, "Failed to update flags")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(emp))
}

// updateFields godoc
// @Summary Update eventless employee fields
// @Description Applies edits to fields with no event semantics (notes)
// @Tags sessions
// @Accept  json
// @Produce  json
// @Param   userID path string true "User ID"
// @Param   employeeID path int true "Employee ID"
// @Param   fields body dto.UpdateEmployeeFieldsRequest true "Field updates"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Session or employee not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /sessions/{userID}/employees/{employeeID} [patch]
func (h *sessionHandler) updateFields(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for fields request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	emp, err := h.sessionService.UpdateFields(c.Request.Context(), userID, employeeID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update employee fields")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(emp))
}
