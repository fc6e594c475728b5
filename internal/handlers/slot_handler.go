package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/domain/slot"
	"github.com/BruksfildServices01/booking-api/internal/dto"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/logger"
)

// SlotCache holds rendered listings keyed by their normalized query.
type SlotCache interface {
	Get(ctx context.Context, query string) ([]byte, bool, error)
	Set(ctx context.Context, query string, body []byte) error
}

type SlotHandler struct {
	repo  slot.Repository
	cache SlotCache
	loc   *time.Location
	log   logger.Logger
}

// NewSlotHandler builds the read-only slot listing. cache may be nil.
func NewSlotHandler(repo slot.Repository, cache SlotCache, loc *time.Location, log logger.Logger) *SlotHandler {
	if loc == nil {
		loc = time.Local
	}
	return &SlotHandler{repo: repo, cache: cache, loc: loc, log: log}
}

// ======================================================
// LIST
// ======================================================

func (h *SlotHandler) List(c *gin.Context) {
	if rejectBody(c) {
		return
	}

	f, err := h.filter(c)
	if err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}

	ctx := c.Request.Context()
	query := fmt.Sprintf("from=%s&to=%s&resources=%s", c.Query("from"), c.Query("to"), f.Resource)

	if h.cache != nil {
		body, ok, err := h.cache.Get(ctx, query)
		if err != nil {
			h.log.Warn("slot cache read failed", logger.String("query", query), logger.Error(err))
		}
		if ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			return
		}
	}

	slots, err := h.repo.ListSlots(ctx, f)
	if err != nil {
		httperr.Internal(c, "failed_to_list_slots", err.Error())
		return
	}

	body, err := json.Marshal(dto.NewSlotList(slots))
	if err != nil {
		httperr.Internal(c, "failed_to_render_slots", err.Error())
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, query, body); err != nil {
			h.log.Warn("slot cache write failed", logger.String("query", query), logger.Error(err))
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *SlotHandler) filter(c *gin.Context) (slot.Filter, error) {
	var f slot.Filter

	if v := c.Query("from"); v != "" {
		from, err := parseDateIn(h.loc, v)
		if err != nil {
			return f, fmt.Errorf("from must look like %s", slot.DateLayout)
		}
		f.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := parseDateIn(h.loc, v)
		if err != nil {
			return f, fmt.Errorf("to must look like %s", slot.DateLayout)
		}
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return f, fmt.Errorf("to must not be before from")
	}
	if v := c.Query("resources"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return f, fmt.Errorf("resources must be a resource ID")
		}
		f.Resource = strconv.FormatUint(id, 10)
	}

	return f, nil
}
