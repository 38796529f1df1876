package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainuser "github.com/BruksfildServices01/boat-rental/internal/domain/user"
	"github.com/BruksfildServices01/boat-rental/internal/dto"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/httpresp"
	"github.com/BruksfildServices01/boat-rental/internal/middleware"
)

type MeHandler struct {
	users domainuser.Repository
}

func NewMeHandler(users domainuser.Repository) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required.")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if errors.Is(err, domain.ErrNotFound) {
		httperr.NotFound(c, httperr.CodeUserNotFound, httperr.Message(httperr.CodeUserNotFound))
		return
	}
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, dto.NewUserDTO(user))
}
