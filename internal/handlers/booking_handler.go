package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/booking-api/internal/dto"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type BookingHandler struct {
	repo  booking.Repository
	audit Auditor
	loc   *time.Location
}

func NewBookingHandler(repo booking.Repository, audit Auditor, loc *time.Location) *BookingHandler {
	if loc == nil {
		loc = time.Local
	}
	return &BookingHandler{repo: repo, audit: audit, loc: loc}
}

type CreateBookingRequest struct {
	ResourceID uint   `json:"resource_id" binding:"required"`
	UserID     uint   `json:"user_id" binding:"required"`
	BookedFrom string `json:"booked_from" binding:"required"`
	BookedTo   string `json:"booked_to" binding:"required"`
	Notes      string `json:"notes" binding:"max=255"`
}

type UpdateBookingRequest struct {
	ID         uint    `json:"id" binding:"required"`
	ResourceID *uint   `json:"resource_id" binding:"omitempty,min=1"`
	BookedFrom *string `json:"booked_from"`
	BookedTo   *string `json:"booked_to"`
	Notes      *string `json:"notes" binding:"omitempty,max=255"`
}

// writeError maps repository and validation failures onto the API codes.
func (h *BookingHandler) writeError(c *gin.Context, id uint, op string, err error) {
	switch {
	case httperr.IsNotFound(err):
		httperr.NotFound(c, "booking_not_found", fmt.Sprintf("Booking with given ID: %d was not found", id))
	case httperr.IsForeignKeyViolation(err):
		httperr.NotAcceptable(c, "invalid_reference", "Resource or user with given ID does not exist")
	case httperr.IsBusiness(err, booking.CodeInvalidPeriod):
		httperr.NotAcceptable(c, booking.CodeInvalidPeriod, "booked_to must be after booked_from")
	default:
		httperr.Internal(c, "failed_to_"+op+"_booking", err.Error())
	}
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	if rejectBody(c) {
		return
	}

	var f booking.Filter
	var err error
	if f.ID, err = queryID(c, "id"); err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}
	if f.ResourceID, err = queryID(c, "resource-id"); err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}
	if f.UserID, err = queryID(c, "user-id"); err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}

	out, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", err.Error())
		return
	}

	httpresp.OK(c, dto.NewBookingList(out))
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}

	from, err := parseTimestampIn(h.loc, req.BookedFrom)
	if err != nil {
		httperr.NotAcceptable(c, "invalid_booked_from", "booked_from must look like 2006-01-02 15:04:05")
		return
	}
	to, err := parseTimestampIn(h.loc, req.BookedTo)
	if err != nil {
		httperr.NotAcceptable(c, "invalid_booked_to", "booked_to must look like 2006-01-02 15:04:05")
		return
	}

	b := models.Booking{
		ResourceID: req.ResourceID,
		UserID:     req.UserID,
		BookedFrom: from,
		BookedTo:   to,
		Notes:      req.Notes,
	}
	if err := booking.ValidatePeriod(&b); err != nil {
		h.writeError(c, 0, "create", err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), &b); err != nil {
		h.writeError(c, 0, "create", err)
		return
	}

	h.audit.Dispatch(event("booking_created", "booking", b.ID, map[string]any{
		"resource_id": b.ResourceID,
		"user_id":     b.UserID,
	}))
	httpresp.Done(c, fmt.Sprintf("Booking with ID %d added", b.ID))
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}

	ctx := c.Request.Context()

	b, err := h.repo.Get(ctx, req.ID)
	if err != nil {
		h.writeError(c, req.ID, "get", err)
		return
	}

	if req.ResourceID != nil {
		b.ResourceID = *req.ResourceID
	}
	if req.BookedFrom != nil {
		if b.BookedFrom, err = parseTimestampIn(h.loc, *req.BookedFrom); err != nil {
			httperr.NotAcceptable(c, "invalid_booked_from", "booked_from must look like 2006-01-02 15:04:05")
			return
		}
	}
	if req.BookedTo != nil {
		if b.BookedTo, err = parseTimestampIn(h.loc, *req.BookedTo); err != nil {
			httperr.NotAcceptable(c, "invalid_booked_to", "booked_to must look like 2006-01-02 15:04:05")
			return
		}
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
	if err := booking.ValidatePeriod(b); err != nil {
		h.writeError(c, b.ID, "update", err)
		return
	}

	if err := h.repo.Update(ctx, b); err != nil {
		h.writeError(c, b.ID, "update", err)
		return
	}

	h.audit.Dispatch(event("booking_updated", "booking", b.ID, nil))
	httpresp.Done(c, fmt.Sprintf("Booking with ID %d updated", b.ID))
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	if rejectBody(c) {
		return
	}
	id, ok := requiredQueryID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, id, "delete", err)
		return
	}

	h.audit.Dispatch(event("booking_deleted", "booking", id, nil))
	httpresp.Done(c, fmt.Sprintf("Booking with ID %d removed", id))
}
