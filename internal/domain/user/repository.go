package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/boat-rental/internal/models"
)

var ErrEmailTaken = errors.New("email already registered")

type Repository interface {
	// Create fails with ErrEmailTaken when the email is in use.
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}
