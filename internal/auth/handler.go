package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/amychanwt/apply-boost/internal/shared/server/respond"
	"github.com/amychanwt/apply-boost/internal/shared/telemetry"
)

const minPasswordLength = 8

// placeholderToken stands in for a real session token; the service performs
// no credential verification and issues nothing a client could replay.
const placeholderToken = "dummy-jwt-token"

// Handler serves the mock signup and login endpoints. Both validate input
// shape only; no account is persisted and no password is ever checked
// against a store.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches auth routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.signup)
	rg.POST("/login", h.login)
}

type credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) signup(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Message(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	if len(req.Password) < minPasswordLength {
		respond.Message(c, http.StatusBadRequest, "Password must be at least 8 characters long")
		return
	}

	telemetry.Info("auth.signup", map[string]any{
		"email":      req.Email,
		"request_id": c.GetString("requestId"),
	})
	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    gin.H{"email": req.Email},
	})
}

func (h *Handler) login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Message(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	if len(req.Password) < minPasswordLength {
		respond.Message(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	telemetry.Info("auth.login", map[string]any{
		"email":      req.Email,
		"request_id": c.GetString("requestId"),
	})
	respond.JSON(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"email": req.Email,
			"name":  displayName(req.Email),
			"token": placeholderToken,
		},
	})
}

// bindErrorMessage distinguishes missing credential fields from a body that
// did not parse at all.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return "Email and password are required"
	}
	return "Invalid request body"
}

// displayName derives a demo display name from the email local part.
func displayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
