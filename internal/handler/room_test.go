package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-venue-manager/internal/model"
	"github.com/iliyamo/hotel-venue-manager/internal/repository"
)

// fakeRoomStore is an in-memory RoomStore honoring the repository contract:
// compound id+owner filtering, sql.ErrNoRows for empty mutations and
// ErrRoomNotFound for toggle misses.
type fakeRoomStore struct {
	nextID uint64
	rooms  map[uint64]*model.Room
	calls  int // total store calls, used to assert auth short-circuits
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: map[uint64]*model.Room{}}
}

func (s *fakeRoomStore) ListByOwner(_ context.Context, ownerID string) ([]*model.Room, error) {
	s.calls++
	out := []*model.Room{}
	for id := uint64(1); id <= s.nextID; id++ {
		if r, ok := s.rooms[id]; ok && r.UserID == ownerID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeRoomStore) Create(_ context.Context, room *model.Room) error {
	s.calls++
	s.nextID++
	room.ID = s.nextID
	room.CreatedAt = time.Now().UTC()
	room.UpdatedAt = room.CreatedAt
	cp := *room
	s.rooms[room.ID] = &cp
	return nil
}

func (s *fakeRoomStore) GetByIDAndOwner(_ context.Context, id uint64, ownerID string) (*model.Room, error) {
	s.calls++
	if r, ok := s.rooms[id]; ok && r.UserID == ownerID {
		cp := *r
		return &cp, nil
	}
	return nil, repository.ErrRoomNotFound
}

func (s *fakeRoomStore) Update(_ context.Context, id uint64, ownerID string, room *model.Room) (*model.Room, error) {
	s.calls++
	r, ok := s.rooms[id]
	if !ok || r.UserID != ownerID {
		return nil, sql.ErrNoRows
	}
	r.Number, r.Type, r.Status = room.Number, room.Type, room.Status
	r.UpdatedAt = time.Now().UTC()
	cp := *r
	return &cp, nil
}

func (s *fakeRoomStore) Toggle(_ context.Context, id uint64, ownerID string) (*model.Room, error) {
	s.calls++
	r, ok := s.rooms[id]
	if !ok || r.UserID != ownerID {
		return nil, repository.ErrRoomNotFound
	}
	r.Status = model.ToggledStatus(r.Status)
	r.UpdatedAt = time.Now().UTC()
	cp := *r
	return &cp, nil
}

func (s *fakeRoomStore) Delete(_ context.Context, id uint64, ownerID string) (*model.Room, error) {
	s.calls++
	r, ok := s.rooms[id]
	if !ok || r.UserID != ownerID {
		return nil, sql.ErrNoRows
	}
	delete(s.rooms, id)
	cp := *r
	return &cp, nil
}

// newRoomHandler wires an APIHandler whose non-room stores are unused.
func newRoomHandler(rooms *fakeRoomStore) *APIHandler {
	return NewAPIHandler(rooms, newFakeMenuPhotoStore(), newFakeMenuListStore(), newFakeEventStore(), nil)
}

// apiRequest runs an APIHandler method as the given tenant and returns the
// recorder.  An empty tenant simulates the session middleware not running.
func apiRequest(t *testing.T, tenant, method, path, routePath, body string, params map[string]string, fn echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var rd *strings.Reader
	if body != "" {
		rd = strings.NewReader(body)
	} else {
		rd = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(routePath)
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	if tenant != "" {
		c.Set("user_id", tenant)
	}
	if err := fn(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func decodeRooms(t *testing.T, rec *httptest.ResponseRecorder) []model.Room {
	t.Helper()
	var out []model.Room
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestRoomHandlers(t *testing.T) {
	t.Run("missing identity rejects before any store call", func(t *testing.T) {
		store := newFakeRoomStore()
		h := newRoomHandler(store)
		rec := apiRequest(t, "", http.MethodGet, "/api/rooms", "/api/rooms", "", nil, h.ListRooms)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if store.calls != 0 {
			t.Errorf("expected zero store calls, got %d", store.calls)
		}
	})

	t.Run("create stamps the session identity, never a payload value", func(t *testing.T) {
		store := newFakeRoomStore()
		h := newRoomHandler(store)
		body := `{"number":"101","type":"single","user_id":"intruder"}`
		rec := apiRequest(t, "tenant-a", http.MethodPost, "/api/rooms", "/api/rooms", body, nil, h.CreateRoom)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		rooms := decodeRooms(t, rec)
		if len(rooms) != 1 {
			t.Fatalf("expected one created row, got %d", len(rooms))
		}
		if rooms[0].UserID != "tenant-a" {
			t.Errorf("owner = %q, want tenant-a", rooms[0].UserID)
		}
		if rooms[0].Status != model.RoomAvailable {
			t.Errorf("status = %q, want default %q", rooms[0].Status, model.RoomAvailable)
		}
	})

	t.Run("create rejects a bad status before the store", func(t *testing.T) {
		store := newFakeRoomStore()
		h := newRoomHandler(store)
		body := `{"number":"101","type":"single","status":"broken"}`
		rec := apiRequest(t, "tenant-a", http.MethodPost, "/api/rooms", "/api/rooms", body, nil, h.CreateRoom)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if store.calls != 0 {
			t.Errorf("expected zero store calls, got %d", store.calls)
		}
	})

	t.Run("toggle twice returns to the original status", func(t *testing.T) {
		store := newFakeRoomStore()
		h := newRoomHandler(store)
		room := &model.Room{UserID: "tenant-a", Number: "7", Type: "double", Status: model.RoomAvailable}
		if err := store.Create(context.Background(),room); err != nil {
			t.Fatal(err)
		}
		params := map[string]string{"id": "1"}
		first := decodeRooms(t, apiRequest(t, "tenant-a", http.MethodPut, "/api/rooms/1/toggle", "/api/rooms/:id/toggle", "", params, h.ToggleRoom))
		if first[0].Status != model.RoomOccupied {
			t.Errorf("after one toggle status = %q, want %q", first[0].Status, model.RoomOccupied)
		}
		second := decodeRooms(t, apiRequest(t, "tenant-a", http.MethodPut, "/api/rooms/1/toggle", "/api/rooms/:id/toggle", "", params, h.ToggleRoom))
		if second[0].Status != model.RoomAvailable {
			t.Errorf("after two toggles status = %q, want %q", second[0].Status, model.RoomAvailable)
		}
	})

	t.Run("toggle on another tenant's room is 404", func(t *testing.T) {
		store := newFakeRoomStore()
		h := newRoomHandler(store)
		if err := store.Create(context.Background(),&model.Room{UserID: "tenant-b", Number: "1", Type: "single", Status: model.RoomAvailable}); err != nil {
			t.Fatal(err)
		}
		rec := apiRequest(t, "tenant-a", http.MethodPut, "/api/rooms/1/toggle", "/api/rooms/:id/toggle", "", map[string]string{"id": "1"}, h.ToggleRoom)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("update on another tenant's room returns an empty result", func(t *testing.T) {
		store := newFakeRoomStore()
		h := newRoomHandler(store)
		if err := store.Create(context.Background(),&model.Room{UserID: "tenant-b", Number: "1", Type: "single", Status: model.RoomAvailable}); err != nil {
			t.Fatal(err)
		}
		body := `{"number":"99","type":"suite","status":"occupied"}`
		rec := apiRequest(t, "tenant-a", http.MethodPut, "/api/rooms/1", "/api/rooms/:id", body, map[string]string{"id": "1"}, h.UpdateRoom)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rooms := decodeRooms(t, rec); len(rooms) != 0 {
			t.Errorf("expected empty result, got %d rows", len(rooms))
		}
		// The foreign row must be untouched.
		if got := store.rooms[1]; got.Number != "1" || got.UserID != "tenant-b" {
			t.Errorf("foreign row mutated: %+v", got)
		}
	})

	t.Run("full lifecycle for a fresh tenant", func(t *testing.T) {
		store := newFakeRoomStore()
		h := newRoomHandler(store)

		if rooms := decodeRooms(t, apiRequest(t, "tenant-a", http.MethodGet, "/api/rooms", "/api/rooms", "", nil, h.ListRooms)); len(rooms) != 0 {
			t.Fatalf("fresh tenant should list zero rooms, got %d", len(rooms))
		}

		created := decodeRooms(t, apiRequest(t, "tenant-a", http.MethodPost, "/api/rooms", "/api/rooms", `{"number":"101","type":"single"}`, nil, h.CreateRoom))
		if created[0].Status != model.RoomAvailable || created[0].UserID != "tenant-a" {
			t.Fatalf("unexpected created row: %+v", created[0])
		}

		listed := decodeRooms(t, apiRequest(t, "tenant-a", http.MethodGet, "/api/rooms", "/api/rooms", "", nil, h.ListRooms))
		if len(listed) != 1 {
			t.Fatalf("expected one room, got %d", len(listed))
		}

		params := map[string]string{"id": "1"}
		toggled := decodeRooms(t, apiRequest(t, "tenant-a", http.MethodPut, "/api/rooms/1/toggle", "/api/rooms/:id/toggle", "", params, h.ToggleRoom))
		if toggled[0].Status != model.RoomOccupied {
			t.Fatalf("expected occupied after toggle, got %q", toggled[0].Status)
		}

		deleted := decodeRooms(t, apiRequest(t, "tenant-a", http.MethodDelete, "/api/rooms/1", "/api/rooms/:id", "", params, h.DeleteRoom))
		if len(deleted) != 1 || deleted[0].ID != 1 {
			t.Fatalf("unexpected delete result: %+v", deleted)
		}

		if rooms := decodeRooms(t, apiRequest(t, "tenant-a", http.MethodGet, "/api/rooms", "/api/rooms", "", nil, h.ListRooms)); len(rooms) != 0 {
			t.Fatalf("expected empty list after delete, got %d rooms", len(rooms))
		}
	})

	t.Run("cross-tenant delete is a no-op and the victim keeps its room", func(t *testing.T) {
		store := newFakeRoomStore()
		h := newRoomHandler(store)
		// Tenant A owns room 1, tenant B owns room 2.
		if err := store.Create(context.Background(),&model.Room{UserID: "tenant-a", Number: "1", Type: "single", Status: model.RoomAvailable}); err != nil {
			t.Fatal(err)
		}
		if err := store.Create(context.Background(),&model.Room{UserID: "tenant-b", Number: "2", Type: "double", Status: model.RoomAvailable}); err != nil {
			t.Fatal(err)
		}

		rec := apiRequest(t, "tenant-a", http.MethodDelete, "/api/rooms/2", "/api/rooms/:id", "", map[string]string{"id": "2"}, h.DeleteRoom)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rooms := decodeRooms(t, rec); len(rooms) != 0 {
			t.Errorf("cross-tenant delete leaked %d rows", len(rooms))
		}

		bRooms := decodeRooms(t, apiRequest(t, "tenant-b", http.MethodGet, "/api/rooms", "/api/rooms", "", nil, h.ListRooms))
		if len(bRooms) != 1 || bRooms[0].Number != "2" {
			t.Errorf("tenant B lost its room: %+v", bRooms)
		}
	})

	t.Run("list only ever returns the caller's rows", func(t *testing.T) {
		store := newFakeRoomStore()
		h := newRoomHandler(store)
		for _, owner := range []string{"tenant-a", "tenant-b", "tenant-a", "tenant-c"} {
			if err := store.Create(context.Background(),&model.Room{UserID: owner, Number: "n", Type: "t", Status: model.RoomAvailable}); err != nil {
				t.Fatal(err)
			}
		}
		rooms := decodeRooms(t, apiRequest(t, "tenant-a", http.MethodGet, "/api/rooms", "/api/rooms", "", nil, h.ListRooms))
		if len(rooms) != 2 {
			t.Fatalf("expected 2 rooms for tenant-a, got %d", len(rooms))
		}
		for _, r := range rooms {
			if r.UserID != "tenant-a" {
				t.Errorf("leaked row owned by %q", r.UserID)
			}
		}
	})
}
