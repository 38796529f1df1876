package memory

import (
	"context"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainboat "github.com/BruksfildServices01/boat-rental/internal/domain/boat"
	domainuser "github.com/BruksfildServices01/boat-rental/internal/domain/user"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type UserRepository struct {
	s *Store
}

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.userByEmail(u.Email); taken {
		return domainuser.ErrEmailTaken
	}
	*u = r.s.addUser(*u)
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := r.s.FindUserByEmail(email)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

type BoatRepository struct {
	s *Store
}

func (s *Store) Boats() *BoatRepository { return &BoatRepository{s: s} }

func (r *BoatRepository) GetBoat(ctx context.Context, id uint) (*models.Boat, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.liveBoat(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *BoatRepository) SetImage(ctx context.Context, id uint, url string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.liveBoat(id)
	if !ok {
		return domain.ErrNotFound
	}
	b.Image = url
	b.UpdatedAt = r.s.now()
	r.s.boats[id] = b
	return nil
}

var _ domainuser.Repository = (*UserRepository)(nil)
var _ domainboat.Repository = (*BoatRepository)(nil)
