package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/middleware"
	"github.com/BruksfildServices01/boat-rental/internal/timezone"
)

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pathID reads a numeric path param, writing a 400 when it is not one.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, ok := parseID(c.Param(name))
	if !ok {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid "+name+".")
	}
	return id, ok
}

// requiredDate reads a mandatory date, writing a 400 when it is missing or
// unparsable.
func requiredDate(c *gin.Context, raw, field string) (time.Time, bool) {
	t, err := timezone.Parse(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid "+field+".")
		return time.Time{}, false
	}
	return t, true
}

func optionalDate(c *gin.Context, raw, field string) (*time.Time, bool) {
	t, err := timezone.ParseOptional(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid "+field+".")
		return nil, false
	}
	return t, true
}

// actor is the authenticated user, nil on public routes.
func actor(c *gin.Context) *uint {
	id, ok := middleware.UserID(c)
	if !ok {
		return nil
	}
	return &id
}

// caller is the authenticated user with the role its token carries.
func caller(c *gin.Context) domain.Actor {
	id, _ := middleware.UserID(c)
	return domain.Actor{ID: id, Role: c.GetString(middleware.ContextUserRole)}
}
