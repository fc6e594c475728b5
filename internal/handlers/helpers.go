package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
)

type Auditor interface {
	Dispatch(ev audit.Event)
}

// rejectBody answers 406 when a GET or DELETE carries a JSON body.
func rejectBody(c *gin.Context) bool {
	if c.Request.ContentLength > 0 {
		httperr.NotAcceptable(c, "body_not_accepted", "JSON body is not accepted in this endpoint")
		return true
	}
	return false
}

// queryID parses an optional numeric query parameter.
func queryID(c *gin.Context, key string) (*uint, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a positive integer", key)
	}
	id := uint(v)
	return &id, nil
}

// requiredQueryID is queryID for DELETE endpoints.
func requiredQueryID(c *gin.Context) (uint, bool) {
	id, err := queryID(c, "id")
	if err != nil || id == nil {
		httperr.NotAcceptable(c, "invalid_input", "Improper URL parameters provided")
		return 0, false
	}
	return *id, true
}

func event(action, entity string, id uint, meta any) audit.Event {
	return audit.Event{
		Action:   action,
		Entity:   entity,
		EntityID: &id,
		Metadata: meta,
	}
}
