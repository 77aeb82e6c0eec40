package api

import (
	"errors"
	"net/http"

	"webfitpro/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler serves /register, /login and /myInfo.
type AccountHandler struct {
	accounts service.AccountService
	logger   *zap.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts service.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

// Numeric fields are pointers so a missing field is distinguishable from a
// legitimate zero and can be rejected.
type registerRequest struct {
	UserName string `json:"userName"`
	Age      *int   `json:"age"`
	Gender   string `json:"gender"`
	Height   *int   `json:"height"`
	Weight   *int   `json:"weight"`
	Password string `json:"password"`
}

type myInfoPatchRequest struct {
	UserName string `json:"userName"`
	Age      *int   `json:"age"`
	Height   *int   `json:"height"`
	Weight   *int   `json:"weight"`
}

// Register serves POST /register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserName == "" || req.Gender == "" || req.Password == "" ||
		req.Age == nil || req.Height == nil || req.Weight == nil {
		respondMessage(c, http.StatusBadRequest, "All fields are required")
		return
	}

	err := h.accounts.Register(c.Request.Context(), service.RegisterInput{
		UserName: req.UserName,
		Age:      *req.Age,
		Gender:   req.Gender,
		Height:   *req.Height,
		Weight:   *req.Weight,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			respondMessage(c, http.StatusConflict, "User already exists")
			return
		}
		h.internalError(c, "registration failed", err)
		return
	}

	respondMessage(c, http.StatusOK, "User registered successfully")
}

// Login serves GET /login with username and password query parameters.
func (h *AccountHandler) Login(c *gin.Context) {
	username := c.Query("username")
	password := c.Query("password")
	if username == "" || password == "" {
		respondMessage(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.accounts.Login(c.Request.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondMessage(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrInvalidPassword):
			respondMessage(c, http.StatusUnauthorized, "Incorrect password")
		default:
			h.internalError(c, "login failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// MyInfoGet dispatches GET /myInfo on the action query parameter.
func (h *AccountHandler) MyInfoGet(c *gin.Context) {
	switch c.Query("action") {
	case "":
		respondMessage(c, http.StatusBadRequest, "Action for GET is required")
	case "getUserData":
		h.getUserData(c)
	case "getUserSessionsData":
		h.getUserSessionsData(c)
	default:
		respondMessage(c, http.StatusBadRequest, "Invalid action for GET")
	}
}

func (h *AccountHandler) getUserData(c *gin.Context) {
	userName := c.Query("userName")
	if userName == "" {
		respondMessage(c, http.StatusBadRequest, "Username is required")
		return
	}

	user, err := h.accounts.Profile(c.Request.Context(), userName)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		h.internalError(c, "profile lookup failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "bmi": user.BMI()})
}

func (h *AccountHandler) getUserSessionsData(c *gin.Context) {
	userName := c.Query("userName")
	if userName == "" {
		respondMessage(c, http.StatusBadRequest, "Username is required")
		return
	}

	session, err := h.accounts.SessionStats(c.Request.Context(), userName)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		h.internalError(c, "session stats lookup failed", err)
		return
	}

	// The front-end reads this payload from the "user" key.
	c.JSON(http.StatusOK, gin.H{"user": session})
}

// MyInfoPatch serves PATCH /myInfo: self-service update of age, height and
// weight.
func (h *AccountHandler) MyInfoPatch(c *gin.Context) {
	var req myInfoPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserName == "" || req.Age == nil || req.Height == nil || req.Weight == nil {
		respondMessage(c, http.StatusBadRequest, "Username, age, height, and weight are required")
		return
	}

	err := h.accounts.UpdateDetails(c.Request.Context(), req.UserName, *req.Age, *req.Height, *req.Weight)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		h.internalError(c, "profile update failed", err)
		return
	}

	respondMessage(c, http.StatusOK, "User details updated successfully")
}

func (h *AccountHandler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err), zap.String("request_id", c.GetString(RequestIDHeader)))
	respondMessage(c, http.StatusInternalServerError, "Internal server error")
}
