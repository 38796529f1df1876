package handlers

import (
	"github.com/gin-gonic/gin"

	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/dto"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/httpresp"
	"github.com/BruksfildServices01/boat-rental/internal/middleware"
	"github.com/BruksfildServices01/boat-rental/internal/models"
	ucBooking "github.com/BruksfildServices01/boat-rental/internal/usecase/booking"
	"github.com/BruksfildServices01/boat-rental/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *ucBooking.CreateBooking
	update *ucBooking.UpdateBookingStatus
	cancel *ucBooking.CancelBooking
	list   *ucBooking.ListBookings
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBookingStatus,
	cancel *ucBooking.CancelBooking,
	list *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		update: update,
		cancel: cancel,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BoatID    uint   `json:"boatId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`

	// RenterID is honoured for admins only.
	RenterID uint `json:"renterId"`

	DailyPrice *float64 `json:"dailyPrice"`
	ServiceFee float64  `json:"serviceFee"`

	RenterName  string `json:"renterName"`
	RenterEmail string `json:"renterEmail"`
	RenterPhone string `json:"renterPhone"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

// POST /bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, httperr.Message(httperr.CodeInvalidRequest))
		return
	}
	start, ok := requiredDate(c, req.StartDate, "startDate")
	if !ok {
		return
	}
	end, ok := requiredDate(c, req.EndDate, "endDate")
	if !ok {
		return
	}
	if req.RenterEmail != "" && !validators.IsEmail(req.RenterEmail) {
		httperr.BadRequest(c, "invalid_email", "Invalid renterEmail.")
		return
	}
	if req.RenterPhone != "" && !validators.IsPhone(req.RenterPhone) {
		httperr.BadRequest(c, "invalid_phone", "Invalid renterPhone.")
		return
	}

	renterID, _ := middleware.UserID(c)
	if req.RenterID != 0 && c.GetString(middleware.ContextUserRole) == models.RoleAdmin {
		renterID = req.RenterID
	}

	in := ucBooking.CreateBookingInput{
		BoatID:          req.BoatID,
		RenterID:        renterID,
		Start:           start,
		End:             end,
		ServiceFeeCents: domainbooking.ToCents(req.ServiceFee),
		RenterName:      req.RenterName,
		RenterEmail:     req.RenterEmail,
		RenterPhone:     req.RenterPhone,
	}
	if req.DailyPrice != nil {
		cents := domainbooking.ToCents(*req.DailyPrice)
		in.DailyPriceCents = &cents
	}

	b, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewBookingDTO(b))
}

// ======================================================
// STATUS
// ======================================================

// PUT /bookings/:id
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, httperr.Message(httperr.CodeInvalidRequest))
		return
	}

	b, err := h.update.Execute(c.Request.Context(), c.Param("id"), req.Status, caller(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingDTO(b))
}

// PATCH /bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	ok, err := h.cancel.Execute(c.Request.Context(), c.Param("id"), caller(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if !ok {
		httperr.NotFound(c, httperr.CodeBookingNotFound, httperr.Message(httperr.CodeBookingNotFound))
		return
	}

	httpresp.OK(c, true)
}

// ======================================================
// READS
// ======================================================

// GET /bookings
func (h *BookingHandler) List(c *gin.Context) {
	var f domainbooking.Filters

	if raw := c.Query("renterId"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid renterId.")
			return
		}
		f.RenterID = &id
	}
	if raw := c.Query("ownerId"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid ownerId.")
			return
		}
		f.OwnerID = &id
	}
	if raw := c.Query("status"); raw != "" {
		st, err := domainbooking.ParseStatus(raw)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		f.Status = &st
	}

	var ok bool
	if f.StartDate, ok = optionalDate(c, c.Query("startDate"), "startDate"); !ok {
		return
	}
	if f.EndDate, ok = optionalDate(c, c.Query("endDate"), "endDate"); !ok {
		return
	}

	list, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingDTOs(list))
}

// GET /bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.list.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingDTO(b))
}

// GET /bookings/renter/:renterId
func (h *BookingHandler) ListByRenter(c *gin.Context) {
	renterID, ok := pathID(c, "renterId")
	if !ok {
		return
	}

	list, err := h.list.ByRenter(c.Request.Context(), renterID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingDTOs(list))
}

// GET /bookings/owner/:ownerId
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := pathID(c, "ownerId")
	if !ok {
		return
	}

	list, err := h.list.ByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingDTOs(list))
}
