package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainreview "github.com/BruksfildServices01/boat-rental/internal/domain/review"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type ReviewRepository struct {
	s *Store
}

func (s *Store) Reviews() *ReviewRepository { return &ReviewRepository{s: s} }

func (r *ReviewRepository) WithinTx(ctx context.Context, fn func(tx domainreview.Tx) error) error {
	return r.s.within(func() error {
		return fn(&tx{s: r.s})
	})
}

func (t *tx) GetBoat(ctx context.Context, boatID uint) (*models.Boat, error) {
	b, ok := t.s.liveBoat(boatID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (t *tx) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	u, ok := t.s.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (t *tx) CreateReview(ctx context.Context, rv *models.Review) error {
	t.s.nextReviewID++
	rv.ID = t.s.nextReviewID
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = t.s.now()
	}
	t.s.reviews[rv.ID] = *rv
	return nil
}

func (t *tx) DeleteReview(ctx context.Context, id uint) (*models.Review, error) {
	rv, ok := t.s.reviews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(t.s.reviews, id)
	return &rv, nil
}

func (t *tx) BoatRatings(ctx context.Context, boatID uint) ([]int, error) {
	ids := make([]uint, 0)
	for id, rv := range t.s.reviews {
		if rv.BoatID == boatID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ratings := make([]int, 0, len(ids))
	for _, id := range ids {
		ratings = append(ratings, t.s.reviews[id].Rating)
	}
	return ratings, nil
}

func (t *tx) UpdateBoatRating(ctx context.Context, boatID uint, rating float64, count int) error {
	b, ok := t.s.boats[boatID]
	if !ok {
		return domain.ErrNotFound
	}
	b.Rating = rating
	b.ReviewCount = count
	t.s.boats[boatID] = b
	return nil
}

var _ domainreview.Repository = (*ReviewRepository)(nil)
var _ domainreview.Tx = (*tx)(nil)
