package boat

import (
	"context"

	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type Repository interface {
	GetBoat(ctx context.Context, id uint) (*models.Boat, error)
	SetImage(ctx context.Context, id uint, url string) error
}

// CanManage reports whether a user with role may edit the boat.
func CanManage(b *models.Boat, userID uint, role string) bool {
	return role == models.RoleAdmin || (role == models.RoleOwner && b.OwnerID == userID)
}
