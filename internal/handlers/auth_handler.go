package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainuser "github.com/BruksfildServices01/boat-rental/internal/domain/user"
	"github.com/BruksfildServices01/boat-rental/internal/dto"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/middleware"
	"github.com/BruksfildServices01/boat-rental/internal/models"
	"github.com/BruksfildServices01/boat-rental/internal/timezone"
	"github.com/BruksfildServices01/boat-rental/internal/validators"
)

type AuthHandler struct {
	users     domainuser.Repository
	jwtSecret string
}

func NewAuthHandler(users domainuser.Repository, jwtSecret string) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	// Role is renter or owner. Admins are provisioned out of band.
	Role string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User  dto.UserDTO `json:"user"`
	Token string      `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, httperr.Message(httperr.CodeInvalidRequest))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmail(email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email.")
		return
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	switch role {
	case "":
		role = models.RoleRenter
	case models.RoleRenter, models.RoleOwner:
	default:
		httperr.BadRequest(c, "invalid_role", "Role must be renter or owner.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role,
	}
	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, domainuser.ErrEmailTaken) {
			httperr.BadRequest(c, "email_already_exists", "Email already registered.")
			return
		}
		httperr.Internal(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, &user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, httperr.Message(httperr.CodeInvalidRequest))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, domain.ErrNotFound) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := middleware.IssueToken(h.jwtSecret, user.ID, user.Role, timezone.Now())
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	c.JSON(status, authResponse{
		User:  dto.NewUserDTO(user),
		Token: token,
	})
}
