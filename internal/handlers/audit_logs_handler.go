package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type AuditLogReader interface {
	List(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditLogReader
	loc  *time.Location
}

func NewAuditLogsHandler(logs AuditLogReader, loc *time.Location) *AuditLogsHandler {
	if loc == nil {
		loc = time.Local
	}
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	if rejectBody(c) {
		return
	}

	// newest events only, no paging
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
	}

	if v := c.Query("from"); v != "" {
		from, err := parseDateIn(h.loc, v)
		if err != nil {
			httperr.NotAcceptable(c, "invalid_input", "from must look like 2006-01-02")
			return
		}
		q.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := parseDateIn(h.loc, v)
		if err != nil {
			httperr.NotAcceptable(c, "invalid_input", "to must look like 2006-01-02")
			return
		}
		q.To = &to
	}

	logs, total, err := h.logs.List(c.Request.Context(), q)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", err.Error())
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(http.StatusOK, gin.H{
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
