package handler

// In-memory store fakes shared by the handler tests.  Each mirrors the
// repository contract: compound id+owner filtering, sql.ErrNoRows for empty
// mutations and the resource's not-found sentinel for direct reads.

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hotel-venue-manager/internal/model"
	"github.com/iliyamo/hotel-venue-manager/internal/queue"
	"github.com/iliyamo/hotel-venue-manager/internal/repository"
)

type fakeMenuPhotoStore struct {
	nextID uint64
	items  map[uint64]*model.MenuPhotoItem
	calls  int
}

func newFakeMenuPhotoStore() *fakeMenuPhotoStore {
	return &fakeMenuPhotoStore{items: map[uint64]*model.MenuPhotoItem{}}
}

func (s *fakeMenuPhotoStore) ListByOwner(_ context.Context, ownerID string) ([]*model.MenuPhotoItem, error) {
	s.calls++
	out := []*model.MenuPhotoItem{}
	for id := uint64(1); id <= s.nextID; id++ {
		if it, ok := s.items[id]; ok && it.UserID == ownerID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeMenuPhotoStore) Create(_ context.Context, item *model.MenuPhotoItem) error {
	s.calls++
	s.nextID++
	item.ID = s.nextID
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *fakeMenuPhotoStore) GetByIDAndOwner(_ context.Context, id uint64, ownerID string) (*model.MenuPhotoItem, error) {
	s.calls++
	if it, ok := s.items[id]; ok && it.UserID == ownerID {
		cp := *it
		return &cp, nil
	}
	return nil, repository.ErrMenuPhotoNotFound
}

func (s *fakeMenuPhotoStore) Update(_ context.Context, id uint64, ownerID string, item *model.MenuPhotoItem) (*model.MenuPhotoItem, error) {
	s.calls++
	it, ok := s.items[id]
	if !ok || it.UserID != ownerID {
		return nil, sql.ErrNoRows
	}
	it.Name, it.Description, it.PhotoURL = item.Name, item.Description, item.PhotoURL
	it.UpdatedAt = time.Now().UTC()
	cp := *it
	return &cp, nil
}

func (s *fakeMenuPhotoStore) Delete(_ context.Context, id uint64, ownerID string) (*model.MenuPhotoItem, error) {
	s.calls++
	it, ok := s.items[id]
	if !ok || it.UserID != ownerID {
		return nil, sql.ErrNoRows
	}
	delete(s.items, id)
	cp := *it
	return &cp, nil
}

type fakeMenuListStore struct {
	nextID uint64
	items  map[uint64]*model.MenuListItem
	calls  int
}

func newFakeMenuListStore() *fakeMenuListStore {
	return &fakeMenuListStore{items: map[uint64]*model.MenuListItem{}}
}

func (s *fakeMenuListStore) ListByOwner(_ context.Context, ownerID string) ([]*model.MenuListItem, error) {
	s.calls++
	out := []*model.MenuListItem{}
	for id := uint64(1); id <= s.nextID; id++ {
		if it, ok := s.items[id]; ok && it.UserID == ownerID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeMenuListStore) Create(_ context.Context, item *model.MenuListItem) error {
	s.calls++
	s.nextID++
	item.ID = s.nextID
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *fakeMenuListStore) GetByIDAndOwner(_ context.Context, id uint64, ownerID string) (*model.MenuListItem, error) {
	s.calls++
	if it, ok := s.items[id]; ok && it.UserID == ownerID {
		cp := *it
		return &cp, nil
	}
	return nil, repository.ErrMenuListNotFound
}

func (s *fakeMenuListStore) Update(_ context.Context, id uint64, ownerID string, item *model.MenuListItem) (*model.MenuListItem, error) {
	s.calls++
	it, ok := s.items[id]
	if !ok || it.UserID != ownerID {
		return nil, sql.ErrNoRows
	}
	it.Title, it.Description, it.Price = item.Title, item.Description, item.Price
	it.UpdatedAt = time.Now().UTC()
	cp := *it
	return &cp, nil
}

func (s *fakeMenuListStore) Delete(_ context.Context, id uint64, ownerID string) (*model.MenuListItem, error) {
	s.calls++
	it, ok := s.items[id]
	if !ok || it.UserID != ownerID {
		return nil, sql.ErrNoRows
	}
	delete(s.items, id)
	cp := *it
	return &cp, nil
}

type fakeEventStore struct {
	nextID uint64
	items  map[uint64]*model.Event
	calls  int
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{items: map[uint64]*model.Event{}}
}

func (s *fakeEventStore) ListByOwner(_ context.Context, ownerID string) ([]*model.Event, error) {
	s.calls++
	out := []*model.Event{}
	for id := uint64(1); id <= s.nextID; id++ {
		if it, ok := s.items[id]; ok && it.UserID == ownerID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeEventStore) Create(_ context.Context, ev *model.Event) error {
	s.calls++
	s.nextID++
	ev.ID = s.nextID
	ev.CreatedAt = time.Now().UTC()
	ev.UpdatedAt = ev.CreatedAt
	cp := *ev
	s.items[ev.ID] = &cp
	return nil
}

func (s *fakeEventStore) GetByIDAndOwner(_ context.Context, id uint64, ownerID string) (*model.Event, error) {
	s.calls++
	if it, ok := s.items[id]; ok && it.UserID == ownerID {
		cp := *it
		return &cp, nil
	}
	return nil, repository.ErrEventNotFound
}

func (s *fakeEventStore) Update(_ context.Context, id uint64, ownerID string, ev *model.Event) (*model.Event, error) {
	s.calls++
	it, ok := s.items[id]
	if !ok || it.UserID != ownerID {
		return nil, sql.ErrNoRows
	}
	it.Name, it.Venue, it.Date, it.Time = ev.Name, ev.Venue, ev.Date, ev.Time
	it.UpdatedAt = time.Now().UTC()
	cp := *it
	return &cp, nil
}

func (s *fakeEventStore) Delete(_ context.Context, id uint64, ownerID string) (*model.Event, error) {
	s.calls++
	it, ok := s.items[id]
	if !ok || it.UserID != ownerID {
		return nil, sql.ErrNoRows
	}
	delete(s.items, id)
	cp := *it
	return &cp, nil
}

// fakeChangeSink records published change events.
type fakeChangeSink struct {
	events []queue.RecordChangedEvent
	err    error
}

func (s *fakeChangeSink) RecordChanged(_ context.Context, ev queue.RecordChangedEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}
