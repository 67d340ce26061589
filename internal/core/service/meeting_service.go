package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartscheduler/meeting-system/internal/api/metrics"
	"github.com/smartscheduler/meeting-system/internal/core/domain"
	"github.com/smartscheduler/meeting-system/internal/core/ports"
)

// MeetingService implements owner-scoped meeting CRUD. The owner filter is
// applied by the repository on every id lookup, so a meeting under a
// different owner is indistinguishable from a missing one.
type MeetingService struct {
	repo   ports.MeetingRepository
	logger zerolog.Logger
}

func NewMeetingService(repo ports.MeetingRepository, logger zerolog.Logger) *MeetingService {
	return &MeetingService{repo: repo, logger: logger}
}

func (s *MeetingService) Create(ctx context.Context, input ports.CreateMeetingInput) (*domain.Meeting, error) {
	if input.Title == "" || input.Date.IsZero() || input.OwnerID == "" {
		return nil, domain.ErrInvalidInput
	}

	participants := input.Participants
	if participants == nil {
		participants = []string{}
	}

	now := time.Now().UTC()
	meeting := &domain.Meeting{
		Title:        input.Title,
		Date:         input.Date,
		Participants: participants,
		Description:  input.Description,
		OwnerID:      input.OwnerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, meeting)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create meeting")
		return nil, err
	}

	metrics.MeetingsCreatedTotal.Inc()
	s.logger.Info().Str("meeting_id", created.ID).Str("owner_id", created.OwnerID).Msg("meeting created")
	return created, nil
}

func (s *MeetingService) List(ctx context.Context, ownerID string) ([]*domain.Meeting, error) {
	if ownerID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *MeetingService) Get(ctx context.Context, id, ownerID string) (*domain.Meeting, error) {
	if id == "" || ownerID == "" {
		return nil, domain.ErrMeetingNotFound
	}
	return s.repo.FindByID(ctx, id, ownerID)
}

func (s *MeetingService) Update(ctx context.Context, input ports.UpdateMeetingInput) (*domain.Meeting, error) {
	if input.ID == "" || input.OwnerID == "" {
		return nil, domain.ErrMeetingNotFound
	}
	if input.Fields.Title != nil && *input.Fields.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Fields.Date != nil && input.Fields.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.repo.Update(ctx, input.ID, input.OwnerID, input.Fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("meeting_id", updated.ID).Str("owner_id", updated.OwnerID).Msg("meeting updated")
	return updated, nil
}

func (s *MeetingService) Delete(ctx context.Context, id, ownerID string) error {
	if id == "" || ownerID == "" {
		return domain.ErrMeetingNotFound
	}
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	s.logger.Info().Str("meeting_id", id).Str("owner_id", ownerID).Msg("meeting deleted")
	return nil
}
