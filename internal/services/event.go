package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"autoevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.OrganizerID == "" {
		return fmt.Errorf("%w: event organizer is required", domain.ErrInvalidInput)
	}
	organizer, err := s.userRepo.GetByID(ctx, event.OrganizerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("get organizer: %w", err)
	}

	if event.Category == "" {
		event.Category = domain.DefaultCategory
	}
	if !domain.ValidCategory(event.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, event.Category)
	}
	if event.EndDate != nil && !event.EndDate.After(event.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidInput)
	}
	if err := validateAttendeeCap(event.CurrentAttendees, event.MaxAttendees); err != nil {
		return err
	}

	// New listings always enter the moderation queue.
	event.Status = domain.StatusPending
	event.CurrentAttendees = 0
	if event.Images == nil {
		event.Images = []string{}
	}
	if event.Tags == nil {
		event.Tags = []string{}
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.Organizer = organizer.Summary()

	// Confirmation mail is best effort; the listing is already saved.
	data := &domain.EventSubmittedEmailData{
		Email:         organizer.Email,
		OrganizerName: organizer.Name,
		EventTitle:    event.Title,
		StartDate:     event.StartDate,
		Location:      event.Location,
	}
	if err := s.emailService.SendEventSubmitted(ctx, data); err != nil {
		s.logger.Warn("event submitted email failed", "event_id", event.ID, "error", err)
	}
	return nil
}

func validateAttendeeCap(current int, max *int) error {
	if current < 0 {
		return fmt.Errorf("%w: current attendees cannot be negative", domain.ErrInvalidInput)
	}
	if max != nil {
		if *max <= 0 {
			return fmt.Errorf("%w: max attendees must be positive", domain.ErrInvalidInput)
		}
		if current > *max {
			return fmt.Errorf("%w: current attendees exceeds capacity", domain.ErrInvalidInput)
		}
	}
	return nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, scope domain.TimeScope) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return domain.FilterEventsByScope(events, scope, time.Now()), nil
}

func (s *eventService) ListEventsByOrganizer(ctx context.Context, organizerID string, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, total, err := s.eventRepo.ListByOrganizerID(ctx, organizerID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events by organizer: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID, callerID string, upd domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != callerID {
		return nil, domain.ErrForbidden
	}

	if upd.Category != nil && !domain.ValidCategory(*upd.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, *upd.Category)
	}
	if upd.Status != nil && !domain.ValidStatus(*upd.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *upd.Status)
	}

	// Check date ordering against the merged record, not just the patch.
	newStart := event.StartDate
	if upd.StartDate != nil {
		newStart = *upd.StartDate
	}
	newEnd := event.EndDate
	if upd.EndDate != nil {
		newEnd = upd.EndDate
	}
	if newEnd != nil && !newEnd.After(newStart) {
		return nil, fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidInput)
	}

	newCurrent := event.CurrentAttendees
	if upd.CurrentAttendees != nil {
		newCurrent = *upd.CurrentAttendees
	}
	newMax := event.MaxAttendees
	if upd.MaxAttendees != nil {
		newMax = upd.MaxAttendees
	}
	if err := validateAttendeeCap(newCurrent, newMax); err != nil {
		return nil, err
	}

	updated, err := s.eventRepo.Update(ctx, eventID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != callerID {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) DashboardStats(ctx context.Context, organizerID string) (*domain.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	stats, err := s.eventRepo.StatsByOrganizerID(ctx, organizerID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}
