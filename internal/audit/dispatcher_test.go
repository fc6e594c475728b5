package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-api/internal/logger"
)

type memSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (m *memSink) Log(ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return m.err
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	sink := &memSink{}
	d := NewDispatcher(sink, logger.Nop())

	id := uint(4)
	d.Dispatch(Event{Action: "resource_created", Entity: "resource", EntityID: &id})
	d.Dispatch(Event{Action: "resource_deleted", Entity: "resource", EntityID: &id})
	d.Close()

	require.Len(t, sink.events, 2)
	assert.Equal(t, "resource_created", sink.events[0].Action)
	assert.Equal(t, "resource_deleted", sink.events[1].Action)
}

func TestDispatcher_SinkErrorsAreSwallowed(t *testing.T) {
	sink := &memSink{err: errors.New("table missing")}
	d := NewDispatcher(sink, logger.Nop())

	d.Dispatch(Event{Action: "user_created"})
	d.Close()
	d.Close()

	assert.Len(t, sink.events, 1)
}
