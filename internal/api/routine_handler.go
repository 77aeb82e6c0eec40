package api

import (
	"errors"
	"net/http"

	"webfitpro/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoutineHandler serves /continueRoutine: opening the current session,
// marking exercises done, submitting a finished routine and in-session likes.
type RoutineHandler struct {
	routines service.RoutineService
	logger   *zap.Logger
}

// NewRoutineHandler creates a new RoutineHandler.
func NewRoutineHandler(routines service.RoutineService, logger *zap.Logger) *RoutineHandler {
	return &RoutineHandler{routines: routines, logger: logger}
}

// routinePatchRequest covers both PATCH actions; which fields are required
// depends on the action discriminator.
type routinePatchRequest struct {
	Action     string `json:"action"`
	UserName   string `json:"userName"`
	Index      *int   `json:"index"`
	DoneAction *bool  `json:"doneAction"`
	URL        string `json:"url"`
	LikeAction *bool  `json:"likeAction"`
}

// HandleGet dispatches GET /continueRoutine on the action query parameter.
func (h *RoutineHandler) HandleGet(c *gin.Context) {
	switch c.Query("action") {
	case "":
		respondMessage(c, http.StatusBadRequest, "Action for GET is required")
	case "getInitalUserSessionData":
		h.getInitialSessionData(c)
	case "getDoneVideoArray":
		h.getDoneVideoArray(c)
	default:
		respondMessage(c, http.StatusBadRequest, "Invalid action for GET")
	}
}

// HandlePatch dispatches PATCH /continueRoutine on the action body field.
func (h *RoutineHandler) HandlePatch(c *gin.Context) {
	var req routinePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch req.Action {
	case "":
		respondMessage(c, http.StatusBadRequest, "Action for PATCH is required")
	case "patchDone":
		h.patchDone(c, req)
	case "patchLikes":
		h.patchLikes(c, req)
	default:
		respondMessage(c, http.StatusBadRequest, "Invalid action for PATCH")
	}
}

// getInitialSessionData returns the user's session, re-initializing it first
// when the previous cycle was finished.
func (h *RoutineHandler) getInitialSessionData(c *gin.Context) {
	userName := c.Query("userName")
	if userName == "" {
		respondMessage(c, http.StatusBadRequest, "userName is missing")
		return
	}

	view, err := h.routines.OpenSession(c.Request.Context(), userName)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			respondMessage(c, http.StatusNotFound, "User session not found for this user")
			return
		}
		h.internalError(c, "open session failed", err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// getDoneVideoArray counts checked exercises and applies the completion
// transition when all of them are done.
func (h *RoutineHandler) getDoneVideoArray(c *gin.Context) {
	userName := c.Query("userName")
	if userName == "" {
		respondMessage(c, http.StatusBadRequest, "userName is missing")
		return
	}

	count, err := h.routines.SubmitSession(c.Request.Context(), userName)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			respondMessage(c, http.StatusNotFound, "User session not found for this user")
			return
		}
		h.internalError(c, "submit session failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"counterChecks": count})
}

func (h *RoutineHandler) patchDone(c *gin.Context, req routinePatchRequest) {
	if req.UserName == "" || req.Index == nil || req.DoneAction == nil {
		respondMessage(c, http.StatusBadRequest, "one of the components is missing")
		return
	}

	err := h.routines.MarkDone(c.Request.Context(), req.UserName, *req.Index, *req.DoneAction)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCheckIndex):
			respondMessage(c, http.StatusBadRequest, "index out of range")
		case errors.Is(err, service.ErrSessionNotFound):
			respondMessage(c, http.StatusNotFound, "User session not found for this user")
		default:
			h.internalError(c, "mark done failed", err)
		}
		return
	}

	respondMessage(c, http.StatusOK, "Update done complete")
}

func (h *RoutineHandler) patchLikes(c *gin.Context, req routinePatchRequest) {
	if req.UserName == "" || req.URL == "" {
		respondMessage(c, http.StatusBadRequest, "one of the components is missing")
		return
	}

	// A missing likeAction is treated as unlike, matching the front-end's
	// falsy handling.
	like := req.LikeAction != nil && *req.LikeAction

	if err := h.routines.ToggleLike(c.Request.Context(), req.UserName, req.URL, like); err != nil {
		h.internalError(c, "toggle like failed", err)
		return
	}

	respondMessage(c, http.StatusOK, "Update checks complete")
}

func (h *RoutineHandler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err), zap.String("request_id", c.GetString(RequestIDHeader)))
	respondMessage(c, http.StatusInternalServerError, "Internal server error")
}
