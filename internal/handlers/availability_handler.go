package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/boat-rental/internal/dto"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/httpresp"
	ucAvailability "github.com/BruksfildServices01/boat-rental/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	check    *ucAvailability.CheckAvailability
	list     *ucAvailability.ListUnavailable
	calendar *ucAvailability.Calendar
}

func NewAvailabilityHandler(
	check *ucAvailability.CheckAvailability,
	list *ucAvailability.ListUnavailable,
	calendar *ucAvailability.Calendar,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		check:    check,
		list:     list,
		calendar: calendar,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AddBlockRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason"`
	Details   string `json:"details"`
}

type SetPeriodRequest struct {
	BoatID      uint   `json:"boatId" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason"`
	Details     string `json:"details"`
}

// ======================================================
// READS
// ======================================================

// GET /availability/check
func (h *AvailabilityHandler) Check(c *gin.Context) {
	boatID, ok := parseID(c.Query("boatId"))
	if !ok {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid boatId.")
		return
	}
	start, ok := requiredDate(c, c.Query("startDate"), "startDate")
	if !ok {
		return
	}
	end, ok := requiredDate(c, c.Query("endDate"), "endDate")
	if !ok {
		return
	}

	res, err := h.check.Execute(c.Request.Context(), ucAvailability.CheckInput{
		BoatID:           boatID,
		Start:            start,
		End:              end,
		ExcludeBookingID: c.Query("excludeBookingId"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

// GET /availability/unavailable
func (h *AvailabilityHandler) ListUnavailable(c *gin.Context) {
	boatID, ok := parseID(c.Query("boatId"))
	if !ok {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid boatId.")
		return
	}
	h.listFor(c, boatID, c.Query("startDate"), c.Query("endDate"))
}

// GET /availability/boats/:boatId/unavailable
func (h *AvailabilityHandler) ListBoatUnavailable(c *gin.Context) {
	boatID, ok := pathID(c, "boatId")
	if !ok {
		return
	}
	h.listFor(c, boatID, "", "")
}

func (h *AvailabilityHandler) listFor(c *gin.Context, boatID uint, rawFrom, rawTo string) {
	from, ok := optionalDate(c, rawFrom, "startDate")
	if !ok {
		return
	}
	to, ok := optionalDate(c, rawTo, "endDate")
	if !ok {
		return
	}

	periods, err := h.list.Execute(c.Request.Context(), ucAvailability.ListUnavailableInput{
		BoatID: boatID,
		From:   from,
		To:     to,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewUnavailablePeriodDTOs(periods))
}

// ======================================================
// WRITES
// ======================================================

// POST /availability/boats/:boatId/unavailable
func (h *AvailabilityHandler) AddBlock(c *gin.Context) {
	boatID, ok := pathID(c, "boatId")
	if !ok {
		return
	}

	var req AddBlockRequest
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

	p, err := h.calendar.AddBlock(c.Request.Context(), ucAvailability.SetPeriodInput{
		BoatID:  boatID,
		Start:   start,
		End:     end,
		Reason:  req.Reason,
		Details: req.Details,
		Actor:   caller(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewPeriodDTO(p))
}

// DELETE /availability/boats/:boatId/unavailable/:startDate
func (h *AvailabilityHandler) RemoveBlock(c *gin.Context) {
	boatID, ok := pathID(c, "boatId")
	if !ok {
		return
	}
	start, ok := requiredDate(c, c.Param("startDate"), "startDate")
	if !ok {
		return
	}

	removed, err := h.calendar.RemoveBlock(c.Request.Context(), boatID, start, caller(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if !removed {
		httperr.NotFound(c, httperr.CodePeriodNotFound, httperr.Message(httperr.CodePeriodNotFound))
		return
	}

	httpresp.NoContent(c)
}

// POST /availability/block
func (h *AvailabilityHandler) SetPeriod(c *gin.Context) {
	var req SetPeriodRequest
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

	p, err := h.calendar.SetPeriod(c.Request.Context(), ucAvailability.SetPeriodInput{
		BoatID:      req.BoatID,
		Start:       start,
		End:         end,
		IsAvailable: req.IsAvailable,
		Reason:      req.Reason,
		Details:     req.Details,
		Actor:       caller(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewPeriodDTO(p))
}

// DELETE /availability/:availabilityId
func (h *AvailabilityHandler) UnblockByID(c *gin.Context) {
	id, ok := pathID(c, "availabilityId")
	if !ok {
		return
	}

	removed, err := h.calendar.UnblockByID(c.Request.Context(), id, caller(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if !removed {
		httperr.NotFound(c, httperr.CodePeriodNotFound, httperr.Message(httperr.CodePeriodNotFound))
		return
	}

	httpresp.NoContent(c)
}
