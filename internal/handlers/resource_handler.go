package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type ResourceHandler struct {
	repo  resource.Repository
	audit Auditor
}

func NewResourceHandler(repo resource.Repository, audit Auditor) *ResourceHandler {
	return &ResourceHandler{repo: repo, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type OpeningHoursRequest struct {
	Mon *string `json:"opening_hours_mon"`
	Tue *string `json:"opening_hours_tue"`
	Wed *string `json:"opening_hours_wed"`
	Thu *string `json:"opening_hours_thu"`
	Fri *string `json:"opening_hours_fri"`
	Sat *string `json:"opening_hours_sat"`
	Sun *string `json:"opening_hours_sun"`
}

type CreateResourceRequest struct {
	Title     string `json:"title" binding:"required"`
	Active    *bool  `json:"active" binding:"required"`
	Intervals *int   `json:"intervals" binding:"omitempty,min=1,max=1440"`
	OpeningHoursRequest
}

type UpdateResourceRequest struct {
	ID        uint   `json:"id" binding:"required"`
	Active    *bool  `json:"active" binding:"required"`
	Title     string `json:"title"`
	Intervals *int   `json:"intervals" binding:"omitempty,min=1,max=1440"`
	OpeningHoursRequest
}

// apply validates every provided schedule before touching r.
func (o OpeningHoursRequest) apply(r *models.Resource) error {
	fields := []struct {
		day string
		in  *string
		out *string
	}{
		{"mon", o.Mon, &r.OpeningHoursMon},
		{"tue", o.Tue, &r.OpeningHoursTue},
		{"wed", o.Wed, &r.OpeningHoursWed},
		{"thu", o.Thu, &r.OpeningHoursThu},
		{"fri", o.Fri, &r.OpeningHoursFri},
		{"sat", o.Sat, &r.OpeningHoursSat},
		{"sun", o.Sun, &r.OpeningHoursSun},
	}

	for _, f := range fields {
		if f.in == nil {
			continue
		}
		if err := schedule.ValidateOpeningHours(*f.in); err != nil {
			return fmt.Errorf("opening_hours_%s: %w", f.day, err)
		}
	}
	for _, f := range fields {
		if f.in != nil {
			*f.out = *f.in
		}
	}
	return nil
}

// ======================================================
// LIST
// ======================================================

func (h *ResourceHandler) List(c *gin.Context) {
	if rejectBody(c) {
		return
	}

	id, err := queryID(c, "id")
	if err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}

	out, err := h.repo.List(c.Request.Context(), resource.Filter{
		ID:    id,
		Title: c.Query("title"),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_resources", err.Error())
		return
	}
	if out == nil {
		out = []models.Resource{}
	}

	httpresp.OK(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *ResourceHandler) Create(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}

	res := models.Resource{
		Title:     req.Title,
		Active:    *req.Active,
		Intervals: 15,
	}
	if req.Intervals != nil {
		res.Intervals = *req.Intervals
	}
	if err := req.OpeningHoursRequest.apply(&res); err != nil {
		httperr.NotAcceptable(c, "invalid_opening_hours", err.Error())
		return
	}

	if err := h.repo.Create(c.Request.Context(), &res); err != nil {
		httperr.Internal(c, "failed_to_create_resource", err.Error())
		return
	}

	h.audit.Dispatch(event("resource_created", "resource", res.ID, nil))
	httpresp.Done(c, fmt.Sprintf("Resource %s added", res.Title))
}

// ======================================================
// UPDATE
// ======================================================

func (h *ResourceHandler) Update(c *gin.Context) {
	var req UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}

	ctx := c.Request.Context()

	res, err := h.repo.Get(ctx, req.ID)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "resource_not_found", fmt.Sprintf("Resource with given ID: %d was not found", req.ID))
			return
		}
		httperr.Internal(c, "failed_to_get_resource", err.Error())
		return
	}

	res.Active = *req.Active
	if req.Title != "" {
		res.Title = req.Title
	}
	if req.Intervals != nil {
		res.Intervals = *req.Intervals
	}
	if err := req.OpeningHoursRequest.apply(res); err != nil {
		httperr.NotAcceptable(c, "invalid_opening_hours", err.Error())
		return
	}

	if err := h.repo.Update(ctx, res); err != nil {
		httperr.Internal(c, "failed_to_update_resource", err.Error())
		return
	}

	h.audit.Dispatch(event("resource_updated", "resource", res.ID, nil))
	httpresp.Done(c, fmt.Sprintf("Resource with ID %d updated", res.ID))
}

// ======================================================
// DELETE
// ======================================================

func (h *ResourceHandler) Delete(c *gin.Context) {
	if rejectBody(c) {
		return
	}
	id, ok := requiredQueryID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "resource_not_found", fmt.Sprintf("Resource with given ID: %d was not found", id))
			return
		}
		httperr.Internal(c, "failed_to_delete_resource", err.Error())
		return
	}

	h.audit.Dispatch(event("resource_deleted", "resource", id, nil))
	httpresp.Done(c, fmt.Sprintf("Resource with ID %d removed", id))
}
