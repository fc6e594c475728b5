package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	"github.com/BruksfildServices01/booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/domain/slot"
	"github.com/BruksfildServices01/booking-api/internal/domain/user"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAuditor) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingAuditor) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

var errNotFound = httperr.ErrBusiness(httperr.CodeNotFound)

// ------------------------------------------------------
// resources
// ------------------------------------------------------

type memResources struct {
	rows   map[uint]models.Resource
	nextID uint
}

var _ resource.Repository = (*memResources)(nil)

func newMemResources(rows ...models.Resource) *memResources {
	m := &memResources{rows: map[uint]models.Resource{}, nextID: 1}
	for _, r := range rows {
		m.rows[r.ID] = r
		if r.ID >= m.nextID {
			m.nextID = r.ID + 1
		}
	}
	return m
}

func (m *memResources) List(ctx context.Context, f resource.Filter) ([]models.Resource, error) {
	var out []models.Resource
	for _, r := range m.rows {
		if f.ID != nil && r.ID != *f.ID {
			continue
		}
		if f.Title != "" && r.Title != f.Title {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memResources) Get(ctx context.Context, id uint) (*models.Resource, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, errNotFound
	}
	return &r, nil
}

func (m *memResources) Create(ctx context.Context, r *models.Resource) error {
	r.ID = m.nextID
	m.nextID++
	m.rows[r.ID] = *r
	return nil
}

func (m *memResources) Update(ctx context.Context, r *models.Resource) error {
	m.rows[r.ID] = *r
	return nil
}

func (m *memResources) Delete(ctx context.Context, id uint) error {
	if _, ok := m.rows[id]; !ok {
		return errNotFound
	}
	delete(m.rows, id)
	return nil
}

// ------------------------------------------------------
// users
// ------------------------------------------------------

type memUsers struct {
	rows   map[uint]models.User
	nextID uint
}

var _ user.Repository = (*memUsers)(nil)

func newMemUsers(rows ...models.User) *memUsers {
	m := &memUsers{rows: map[uint]models.User{}, nextID: 1}
	for _, u := range rows {
		m.rows[u.ID] = u
		if u.ID >= m.nextID {
			m.nextID = u.ID + 1
		}
	}
	return m
}

func (m *memUsers) List(ctx context.Context, f user.Filter) ([]models.User, error) {
	var out []models.User
	for _, u := range m.rows {
		if f.ID != nil && u.ID != *f.ID {
			continue
		}
		if f.Name != "" && u.Name != f.Name {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) Get(ctx context.Context, id uint) (*models.User, error) {
	u, ok := m.rows[id]
	if !ok {
		return nil, errNotFound
	}
	return &u, nil
}

func (m *memUsers) Create(ctx context.Context, u *models.User) error {
	u.ID = m.nextID
	m.nextID++
	m.rows[u.ID] = *u
	return nil
}

func (m *memUsers) Update(ctx context.Context, u *models.User) error {
	m.rows[u.ID] = *u
	return nil
}

func (m *memUsers) Delete(ctx context.Context, id uint) error {
	if _, ok := m.rows[id]; !ok {
		return errNotFound
	}
	delete(m.rows, id)
	return nil
}

// ------------------------------------------------------
// bookings
// ------------------------------------------------------

type memBookings struct {
	rows      map[uint]models.Booking
	nextID    uint
	createErr error
	lastList  booking.Filter
}

var _ booking.Repository = (*memBookings)(nil)

func newMemBookings(rows ...models.Booking) *memBookings {
	m := &memBookings{rows: map[uint]models.Booking{}, nextID: 1}
	for _, b := range rows {
		m.rows[b.ID] = b
		if b.ID >= m.nextID {
			m.nextID = b.ID + 1
		}
	}
	return m
}

func (m *memBookings) List(ctx context.Context, f booking.Filter) ([]models.Booking, error) {
	m.lastList = f
	var out []models.Booking
	for _, b := range m.rows {
		if f.ID != nil && b.ID != *f.ID {
			continue
		}
		if f.ResourceID != nil && b.ResourceID != *f.ResourceID {
			continue
		}
		if f.UserID != nil && b.UserID != *f.UserID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *memBookings) Get(ctx context.Context, id uint) (*models.Booking, error) {
	b, ok := m.rows[id]
	if !ok {
		return nil, errNotFound
	}
	return &b, nil
}

func (m *memBookings) Create(ctx context.Context, b *models.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	b.ID = m.nextID
	m.nextID++
	m.rows[b.ID] = *b
	return nil
}

func (m *memBookings) Update(ctx context.Context, b *models.Booking) error {
	m.rows[b.ID] = *b
	return nil
}

func (m *memBookings) Delete(ctx context.Context, id uint) error {
	if _, ok := m.rows[id]; !ok {
		return errNotFound
	}
	delete(m.rows, id)
	return nil
}

// ------------------------------------------------------
// slots
// ------------------------------------------------------

type memSlots struct {
	rows     []models.Slot
	calls    int
	lastList slot.Filter
}

var _ slot.Repository = (*memSlots)(nil)

func (m *memSlots) ListResources(ctx context.Context) ([]models.Resource, error) {
	return nil, nil
}

func (m *memSlots) InsertSlot(ctx context.Context, s *models.Slot) error {
	m.rows = append(m.rows, *s)
	return nil
}

func (m *memSlots) ListSlots(ctx context.Context, f slot.Filter) ([]models.Slot, error) {
	m.calls++
	m.lastList = f
	return m.rows, nil
}

type memCache struct {
	entries map[string][]byte
}

func (m *memCache) Get(ctx context.Context, query string) ([]byte, bool, error) {
	b, ok := m.entries[query]
	return b, ok, nil
}

func (m *memCache) Set(ctx context.Context, query string, body []byte) error {
	m.entries[query] = body
	return nil
}

// ------------------------------------------------------
// http
// ------------------------------------------------------

func serve(t *testing.T, h gin.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.Handle(method, "/", h)

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
