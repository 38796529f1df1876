package review

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/boat-rental/internal/audit"
	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainreview "github.com/BruksfildServices01/boat-rental/internal/domain/review"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type CreateReviewInput struct {
	BoatID    uint
	BookingID string
	UserID    uint
	Rating    int
	Comment   string
}

// Reviews writes reviews and keeps Boat.Rating and Boat.ReviewCount equal
// to the aggregate of the stored reviews.
type Reviews struct {
	repo  domainreview.Repository
	audit *audit.Dispatcher
}

func NewReviews(repo domainreview.Repository, audit *audit.Dispatcher) *Reviews {
	return &Reviews{repo: repo, audit: audit}
}

func (uc *Reviews) Create(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if !domainreview.ValidRating(in.Rating) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRating)
	}

	var created *models.Review
	err := uc.repo.WithinTx(ctx, func(tx domainreview.Tx) error {
		if _, err := tx.GetBoat(ctx, in.BoatID); err != nil {
			return notFoundAs(err, httperr.CodeBoatNotFound)
		}
		user, err := tx.GetUser(ctx, in.UserID)
		if err != nil {
			return notFoundAs(err, httperr.CodeUserNotFound)
		}

		r := &models.Review{
			BoatID:   in.BoatID,
			UserID:   in.UserID,
			UserName: user.Name,
			Rating:   in.Rating,
			Comment:  strings.TrimSpace(in.Comment),
		}
		if in.BookingID != "" {
			id := in.BookingID
			r.BookingID = &id
		}
		if err := tx.CreateReview(ctx, r); err != nil {
			return err
		}
		created = r
		return recompute(ctx, tx, in.BoatID)
	})
	if err != nil {
		return nil, err
	}

	userID := in.UserID
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: strconv.FormatUint(uint64(created.ID), 10),
		Metadata: map[string]any{"boat_id": in.BoatID, "rating": in.Rating},
	})
	return created, nil
}

func (uc *Reviews) Delete(
	ctx context.Context,
	id uint,
	actorID *uint,
) error {

	err := uc.repo.WithinTx(ctx, func(tx domainreview.Tx) error {
		removed, err := tx.DeleteReview(ctx, id)
		if err != nil {
			return notFoundAs(err, httperr.CodeReviewNotFound)
		}
		return recompute(ctx, tx, removed.BoatID)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: strconv.FormatUint(uint64(id), 10),
	})
	return nil
}

func recompute(ctx context.Context, tx domainreview.Tx, boatID uint) error {
	ratings, err := tx.BoatRatings(ctx, boatID)
	if err != nil {
		return err
	}
	return tx.UpdateBoatRating(ctx, boatID, domainreview.Average(ratings), len(ratings))
}

func notFoundAs(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
