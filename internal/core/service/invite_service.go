package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartscheduler/meeting-system/internal/api/metrics"
	"github.com/smartscheduler/meeting-system/internal/core/domain"
	"github.com/smartscheduler/meeting-system/internal/core/ports"
)

// tokenBytes gives 128 bits of entropy, 32 hex characters on the wire.
const tokenBytes = 16

// maxMintAttempts bounds the retry loop on a unique-index collision. At this
// entropy a single collision is already a store-corruption signal.
const maxMintAttempts = 3

// InviteCache abstracts the read-through cache on the public resolve path.
// Get returns (nil, nil) on a miss; all errors are non-fatal to the caller.
type InviteCache interface {
	Get(ctx context.Context, token string) (*domain.InviteLink, error)
	Set(ctx context.Context, link *domain.InviteLink) error
}

// InviteService mints and resolves shareable invite links.
type InviteService struct {
	repo        ports.InviteRepository
	meetingRepo ports.MeetingRepository
	cache       InviteCache
	baseURL     string
	log         zerolog.Logger

	// now is swappable so expiry tests can advance the clock.
	now func() time.Time
}

// NewInviteService builds an InviteService. cache may be nil, in which case
// every resolve hits the repository. baseURL is the external URL the
// shareable link is built from.
func NewInviteService(
	repo ports.InviteRepository,
	meetingRepo ports.MeetingRepository,
	cache InviteCache,
	baseURL string,
	log zerolog.Logger,
) *InviteService {
	return &InviteService{
		repo:        repo,
		meetingRepo: meetingRepo,
		cache:       cache,
		baseURL:     strings.TrimRight(baseURL, "/"),
		log:         log,
		now:         time.Now,
	}
}

func (s *InviteService) Create(ctx context.Context, input ports.CreateInviteInput) (*ports.CreateInviteResult, error) {
	if input.OwnerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.TTLHours < 0 {
		return nil, domain.ErrInvalidInput
	}

	scope := domain.InviteScope(input.Scope)
	if scope == "" {
		scope = domain.ScopeView
	}
	if !scope.IsValid() {
		return nil, domain.ErrInvalidScope
	}

	var expiresAt *time.Time
	if input.TTLHours > 0 {
		t := s.now().UTC().Add(time.Duration(input.TTLHours) * time.Hour)
		expiresAt = &t
	}

	var created *domain.InviteLink
	for attempt := 1; ; attempt++ {
		token, err := generateInviteToken()
		if err != nil {
			return nil, err
		}

		link := &domain.InviteLink{
			OwnerID:   input.OwnerID,
			Token:     token,
			Scope:     scope,
			ExpiresAt: expiresAt,
			CreatedAt: s.now().UTC(),
		}

		created, err = s.repo.Create(ctx, link)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateToken) || attempt >= maxMintAttempts {
			return nil, err
		}
		s.log.Warn().Int("attempt", attempt).Msg("invite token collision, regenerating")
	}

	metrics.InvitesCreatedTotal.WithLabelValues(string(scope)).Inc()
	s.log.Info().Str("owner_id", created.OwnerID).Str("scope", string(created.Scope)).Msg("invite link created")

	return &ports.CreateInviteResult{
		URL:       s.baseURL + "/invite/" + created.Token,
		Token:     created.Token,
		Scope:     created.Scope,
		ExpiresAt: created.ExpiresAt,
	}, nil
}

func (s *InviteService) Resolve(ctx context.Context, token string) (*ports.InviteResolution, error) {
	if token == "" {
		metrics.InviteResolutionsTotal.WithLabelValues("not_found").Inc()
		return nil, domain.ErrInviteNotFound
	}

	link, err := s.lookupLink(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrInviteNotFound) {
			metrics.InviteResolutionsTotal.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	// Expiry is enforced here, at resolution time. The link itself stays in
	// storage (and possibly in cache) after it lapses.
	if link.Expired(s.now()) {
		metrics.InviteResolutionsTotal.WithLabelValues("expired").Inc()
		return nil, domain.ErrInviteExpired
	}

	meetings, err := s.meetingRepo.ListByOwner(ctx, link.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("resolve invite: %w", err)
	}

	shared := make([]ports.SharedMeeting, 0, len(meetings))
	for _, m := range meetings {
		shared = append(shared, ports.SharedMeeting{
			ID:           m.ID,
			Title:        m.Title,
			Date:         m.Date,
			Participants: m.Participants,
		})
	}

	metrics.InviteResolutionsTotal.WithLabelValues("ok").Inc()
	return &ports.InviteResolution{
		OwnerID:  link.OwnerID,
		Scope:    link.Scope,
		Meetings: shared,
	}, nil
}

// lookupLink tries the cache first and falls back to the repository. Cache
// failures are logged and otherwise ignored.
func (s *InviteService) lookupLink(ctx context.Context, token string) (*domain.InviteLink, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, token)
		if err != nil {
			s.log.Warn().Err(err).Msg("invite cache read failed, falling back to store")
		} else if cached != nil {
			return cached, nil
		}
	}

	link, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, link); err != nil {
			s.log.Warn().Err(err).Msg("invite cache write failed")
		}
	}
	return link, nil
}

func generateInviteToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate invite token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
