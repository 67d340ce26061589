package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartscheduler/meeting-system/internal/core/domain"
	"github.com/smartscheduler/meeting-system/internal/core/ports"
)

type stubMeetingRepo struct {
	meetings map[string]*domain.Meeting
	nextID   int
}

func newStubMeetingRepo() *stubMeetingRepo {
	return &stubMeetingRepo{meetings: make(map[string]*domain.Meeting)}
}

func cloneMeeting(m *domain.Meeting) *domain.Meeting {
	if m == nil {
		return nil
	}
	clone := *m
	if m.Participants != nil {
		clone.Participants = append([]string{}, m.Participants...)
	}
	return &clone
}

func (r *stubMeetingRepo) Create(_ context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	copy := cloneMeeting(m)
	r.nextID++
	copy.ID = fmt.Sprintf("meeting_%d", r.nextID)
	r.meetings[copy.ID] = cloneMeeting(copy)
	return copy, nil
}

func (r *stubMeetingRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Meeting, error) {
	out := make([]*domain.Meeting, 0)
	for _, m := range r.meetings {
		if m.OwnerID == ownerID {
			out = append(out, cloneMeeting(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *stubMeetingRepo) FindByID(_ context.Context, id, ownerID string) (*domain.Meeting, error) {
	m, ok := r.meetings[id]
	if !ok || m.OwnerID != ownerID {
		return nil, domain.ErrMeetingNotFound
	}
	return cloneMeeting(m), nil
}

func (r *stubMeetingRepo) Update(_ context.Context, id, ownerID string, update ports.MeetingUpdate) (*domain.Meeting, error) {
	m, ok := r.meetings[id]
	if !ok || m.OwnerID != ownerID {
		return nil, domain.ErrMeetingNotFound
	}
	if update.Title != nil {
		m.Title = *update.Title
	}
	if update.Date != nil {
		m.Date = *update.Date
	}
	if update.Participants != nil {
		m.Participants = append([]string(nil), *update.Participants...)
	}
	if update.Description != nil {
		m.Description = *update.Description
	}
	m.UpdatedAt = time.Now().UTC()
	return cloneMeeting(m), nil
}

func (r *stubMeetingRepo) Delete(_ context.Context, id, ownerID string) error {
	m, ok := r.meetings[id]
	if !ok || m.OwnerID != ownerID {
		return domain.ErrMeetingNotFound
	}
	delete(r.meetings, id)
	return nil
}

func testMeetingService(repo ports.MeetingRepository) *MeetingService {
	return NewMeetingService(repo, zerolog.Nop())
}

func TestMeetingService_Create(t *testing.T) {
	repo := newStubMeetingRepo()
	svc := testMeetingService(repo)

	date := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	meeting, err := svc.Create(context.Background(), ports.CreateMeetingInput{
		Title:   "Sync",
		Date:    date,
		OwnerID: "ana",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if meeting.OwnerID != "ana" {
		t.Fatalf("expected owner ana, got %q", meeting.OwnerID)
	}
	if meeting.Participants == nil {
		t.Fatalf("expected empty participants slice, got nil")
	}
	if meeting.CreatedAt.IsZero() || meeting.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestMeetingService_Create_Validation(t *testing.T) {
	svc := testMeetingService(newStubMeetingRepo())

	if _, err := svc.Create(context.Background(), ports.CreateMeetingInput{Date: time.Now(), OwnerID: "a"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("missing title: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateMeetingInput{Title: "x", OwnerID: "a"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("missing date: expected ErrInvalidInput, got %v", err)
	}
}

func TestMeetingService_List_SortedByDate(t *testing.T) {
	repo := newStubMeetingRepo()
	svc := testMeetingService(repo)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, offset := range []int{3, 1, 2} {
		if _, err := svc.Create(context.Background(), ports.CreateMeetingInput{
			Title:   fmt.Sprintf("m%d", offset),
			Date:    base.AddDate(0, 0, offset),
			OwnerID: "ana",
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	meetings, err := svc.List(context.Background(), "ana")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(meetings) != 3 {
		t.Fatalf("expected 3 meetings, got %d", len(meetings))
	}
	for i := 1; i < len(meetings); i++ {
		if meetings[i].Date.Before(meetings[i-1].Date) {
			t.Fatalf("meetings not sorted by date ascending: %v", meetings)
		}
	}
}

func TestMeetingService_OwnerIsolation(t *testing.T) {
	repo := newStubMeetingRepo()
	svc := testMeetingService(repo)

	created, err := svc.Create(context.Background(), ports.CreateMeetingInput{
		Title:   "Private",
		Date:    time.Now().UTC(),
		OwnerID: "ana",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Another identity must see the same 404 it would see for a missing id.
	if _, err := svc.Get(context.Background(), created.ID, "bob"); !errors.Is(err, domain.ErrMeetingNotFound) {
		t.Fatalf("get: expected ErrMeetingNotFound, got %v", err)
	}
	title := "Hijacked"
	if _, err := svc.Update(context.Background(), ports.UpdateMeetingInput{
		ID: created.ID, OwnerID: "bob",
		Fields: ports.MeetingUpdate{Title: &title},
	}); !errors.Is(err, domain.ErrMeetingNotFound) {
		t.Fatalf("update: expected ErrMeetingNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, "bob"); !errors.Is(err, domain.ErrMeetingNotFound) {
		t.Fatalf("delete: expected ErrMeetingNotFound, got %v", err)
	}

	list, err := svc.List(context.Background(), "bob")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list for bob, got %d meetings", len(list))
	}

	// The owner still has full access.
	if _, err := svc.Get(context.Background(), created.ID, "ana"); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
}

func TestMeetingService_PartialUpdate(t *testing.T) {
	repo := newStubMeetingRepo()
	svc := testMeetingService(repo)

	created, err := svc.Create(context.Background(), ports.CreateMeetingInput{
		Title:        "Planning",
		Date:         time.Date(2025, 5, 1, 14, 0, 0, 0, time.UTC),
		Participants: []string{"ana", "bob"},
		Description:  "quarterly planning",
		OwnerID:      "ana",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	title := "Planning v2"
	updated, err := svc.Update(context.Background(), ports.UpdateMeetingInput{
		ID: created.ID, OwnerID: "ana",
		Fields: ports.MeetingUpdate{Title: &title},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Planning v2" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if !updated.Date.Equal(created.Date) || updated.Description != created.Description {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if len(updated.Participants) != 2 {
		t.Fatalf("participants changed: %v", updated.Participants)
	}
}

func TestMeetingService_Update_RejectsEmptyTitle(t *testing.T) {
	repo := newStubMeetingRepo()
	svc := testMeetingService(repo)

	created, _ := svc.Create(context.Background(), ports.CreateMeetingInput{
		Title: "Sync", Date: time.Now().UTC(), OwnerID: "ana",
	})

	empty := ""
	if _, err := svc.Update(context.Background(), ports.UpdateMeetingInput{
		ID: created.ID, OwnerID: "ana",
		Fields: ports.MeetingUpdate{Title: &empty},
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMeetingService_Delete(t *testing.T) {
	repo := newStubMeetingRepo()
	svc := testMeetingService(repo)

	created, _ := svc.Create(context.Background(), ports.CreateMeetingInput{
		Title: "Sync", Date: time.Now().UTC(), OwnerID: "ana",
	})

	if err := svc.Delete(context.Background(), created.ID, "ana"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID, "ana"); !errors.Is(err, domain.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound after delete, got %v", err)
	}
}
