package api

import (
	"errors"
	"net/http"

	"webfitpro/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DiscoverHandler serves /discover (sorted and filtered catalog listings plus
// out-of-session like updates) and the /homepage quote.
type DiscoverHandler struct {
	catalog  service.CatalogService
	routines service.RoutineService
	logger   *zap.Logger
}

// NewDiscoverHandler creates a new DiscoverHandler. The routine service is
// shared for like updates so both entry points run the same toggle.
func NewDiscoverHandler(catalog service.CatalogService, routines service.RoutineService, logger *zap.Logger) *DiscoverHandler {
	return &DiscoverHandler{catalog: catalog, routines: routines, logger: logger}
}

type discoverPatchRequest struct {
	Action     string `json:"action"`
	UserName   string `json:"userName"`
	URL        string `json:"url"`
	LikeAction *bool  `json:"likeAction"`
}

// HandleGet dispatches GET /discover on the action query parameter.
func (h *DiscoverHandler) HandleGet(c *gin.Context) {
	action := c.Query("action")
	if action == "" {
		respondMessage(c, http.StatusBadRequest, "Action for GET is required")
		return
	}

	userName := c.Query("userName")
	bodyPart := c.Query("bodyPart")
	if userName == "" || bodyPart == "" {
		respondMessage(c, http.StatusBadRequest, "Body part and username is required")
		return
	}
	ctx := c.Request.Context()

	var (
		list *service.VideoList
		err  error
	)
	switch action {
	case "sortByTitle":
		list, err = h.catalog.SortByTitle(ctx, userName, bodyPart, c.Query("ascending") == "true")
	case "sortByLikes":
		list, err = h.catalog.SortByLikes(ctx, userName, bodyPart, c.Query("highestFirst") == "true")
	case "sortByDifficulty":
		list, err = h.catalog.SortByDifficulty(ctx, userName, bodyPart, c.Query("beginnerFirst") == "true")
	case "filterByBodyPart":
		list, err = h.catalog.FilterByBodyPart(ctx, userName, bodyPart)
	default:
		respondMessage(c, http.StatusBadRequest, "Invalid action for GET")
		return
	}

	if err != nil {
		h.internalError(c, "catalog query failed", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// HandlePatch dispatches PATCH /discover on the action body field.
func (h *DiscoverHandler) HandlePatch(c *gin.Context) {
	var req discoverPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch req.Action {
	case "":
		respondMessage(c, http.StatusBadRequest, "Action for PATCH is required")
	case "updateVideoLikes":
		h.updateVideoLikes(c, req)
	default:
		respondMessage(c, http.StatusBadRequest, "Invalid action for PATCH")
	}
}

func (h *DiscoverHandler) updateVideoLikes(c *gin.Context, req discoverPatchRequest) {
	if req.UserName == "" || req.URL == "" {
		respondMessage(c, http.StatusBadRequest, "One or more components are missing")
		return
	}

	like := req.LikeAction != nil && *req.LikeAction

	if err := h.routines.ToggleLike(c.Request.Context(), req.UserName, req.URL, like); err != nil {
		h.internalError(c, "toggle like failed", err)
		return
	}

	respondMessage(c, http.StatusOK, "Update checks complete")
}

// Homepage serves GET /homepage: one random motivational quote.
func (h *DiscoverHandler) Homepage(c *gin.Context) {
	quote, err := h.catalog.RandomQuote(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrQuoteNotFound) {
			respondMessage(c, http.StatusNotFound, "failed to get quote")
			return
		}
		h.internalError(c, "random quote failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

func (h *DiscoverHandler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err), zap.String("request_id", c.GetString(RequestIDHeader)))
	respondMessage(c, http.StatusInternalServerError, "Internal server error")
}
