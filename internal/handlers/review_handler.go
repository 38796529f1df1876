package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/httpresp"
	"github.com/BruksfildServices01/boat-rental/internal/middleware"
	ucReview "github.com/BruksfildServices01/boat-rental/internal/usecase/review"
)

type ReviewHandler struct {
	reviews *ucReview.Reviews
}

func NewReviewHandler(reviews *ucReview.Reviews) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type CreateReviewRequest struct {
	BoatID    uint   `json:"boatId" binding:"required"`
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// POST /reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, httperr.Message(httperr.CodeInvalidRequest))
		return
	}

	userID, _ := middleware.UserID(c)
	r, err := h.reviews.Create(c.Request.Context(), ucReview.CreateReviewInput{
		BoatID:    req.BoatID,
		BookingID: req.BookingID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, r)
}

// DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), id, actor(c)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
