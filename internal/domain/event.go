package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared across event operations.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// EventCategory is the fixed set of event types.
type EventCategory string

const (
	CategoryRally      EventCategory = "RALLY"
	CategoryExhibition EventCategory = "EXHIBITION"
	CategoryShow       EventCategory = "SHOW"
	CategoryRace       EventCategory = "RACE"
	CategoryTrackDay   EventCategory = "TRACK_DAY"
	CategoryMeetUp     EventCategory = "MEET_UP"
	CategoryConference EventCategory = "CONFERENCE"
	CategoryOther      EventCategory = "OTHER"
)

// DefaultCategory is applied when a create request omits the category.
const DefaultCategory = CategoryExhibition

// EventCategories lists every valid category.
var EventCategories = []EventCategory{
	CategoryRally,
	CategoryExhibition,
	CategoryShow,
	CategoryRace,
	CategoryTrackDay,
	CategoryMeetUp,
	CategoryConference,
	CategoryOther,
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c EventCategory) bool {
	for _, v := range EventCategories {
		if c == v {
			return true
		}
	}
	return false
}

// EventStatus is the moderation lifecycle tag gating visibility.
type EventStatus string

const (
	StatusPending   EventStatus = "PENDING"
	StatusApproved  EventStatus = "APPROVED"
	StatusPublished EventStatus = "PUBLISHED"
	StatusRejected  EventStatus = "REJECTED"
	StatusCancelled EventStatus = "CANCELLED"
)

// ValidStatus reports whether s is a known lifecycle status.
func ValidStatus(s EventStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusPublished, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// OrganizerSummary is the subset of a User embedded in event responses.
type OrganizerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Event represents an automotive event listing.
type Event struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	ShortDescription *string           `json:"shortDescription"`
	StartDate        time.Time         `json:"startDate"`
	EndDate          *time.Time        `json:"endDate"`
	Location         string            `json:"location"`
	Address          *string           `json:"address"`
	Latitude         *float64          `json:"latitude"`
	Longitude        *float64          `json:"longitude"`
	ImageURL         *string           `json:"imageUrl"`
	Images           []string          `json:"images"`
	TicketPrice      *float64          `json:"ticketPrice"`
	TicketURL        *string           `json:"ticketUrl"`
	WebsiteURL       *string           `json:"websiteUrl"`
	ContactEmail     *string           `json:"contactEmail"`
	ContactPhone     *string           `json:"contactPhone"`
	Category         EventCategory     `json:"category"`
	Status           EventStatus       `json:"status"`
	MaxAttendees     *int              `json:"maxAttendees"`
	CurrentAttendees int               `json:"currentAttendees"`
	Tags             []string          `json:"tags"`
	OrganizerID      string            `json:"organizerId"`
	Organizer        *OrganizerSummary `json:"organizer,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// EventUpdate holds the partial fields of an update. Nil means unchanged.
type EventUpdate struct {
	Title            *string
	Description      *string
	ShortDescription *string
	StartDate        *time.Time
	EndDate          *time.Time
	Location         *string
	Address          *string
	Latitude         *float64
	Longitude        *float64
	ImageURL         *string
	Images           []string
	TicketPrice      *float64
	TicketURL        *string
	WebsiteURL       *string
	ContactEmail     *string
	ContactPhone     *string
	Category         *EventCategory
	Status           *EventStatus
	MaxAttendees     *int
	CurrentAttendees *int
	Tags             []string
}

// TimeScope selects events relative to the current instant.
type TimeScope string

const (
	ScopeAll      TimeScope = ""
	ScopeToday    TimeScope = "today"
	ScopePast     TimeScope = "past"
	ScopeUpcoming TimeScope = "upcoming"
)

// ParseTimeScope maps a query value to a TimeScope. Unknown values mean ScopeAll.
func ParseTimeScope(s string) TimeScope {
	switch TimeScope(s) {
	case ScopeToday, ScopePast, ScopeUpcoming:
		return TimeScope(s)
	}
	return ScopeAll
}

// FilterEventsByScope retains events matching the scope relative to now,
// preserving order. "today" compares by whole-day truncation in now's
// location; "past" is strictly before now; "upcoming" is now or later.
func FilterEventsByScope(events []*Event, scope TimeScope, now time.Time) []*Event {
	if scope == ScopeAll {
		return events
	}
	out := make([]*Event, 0, len(events))
	for _, e := range events {
		start := e.StartDate.In(now.Location())
		var keep bool
		switch scope {
		case ScopeToday:
			y1, m1, d1 := start.Date()
			y2, m2, d2 := now.Date()
			keep = y1 == y2 && m1 == m2 && d1 == d2
		case ScopePast:
			keep = start.Before(now)
		case ScopeUpcoming:
			keep = !start.Before(now)
		}
		if keep {
			out = append(out, e)
		}
	}
	return out
}

// DashboardStats are the aggregate counts for an organizer's dashboard.
type DashboardStats struct {
	TotalEvents    int `json:"totalEvents"`
	PublishedCount int `json:"publishedCount"`
	PendingCount   int `json:"pendingCount"`
	UpcomingCount  int `json:"upcomingCount"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListByOrganizerID(ctx context.Context, organizerID string, params PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
	StatsByOrganizerID(ctx context.Context, organizerID string, now time.Time) (*DashboardStats, error)
}

// EventService defines the business logic for event listings.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context, scope TimeScope) ([]*Event, error)
	ListEventsByOrganizer(ctx context.Context, organizerID string, params PaginationParams) ([]*Event, int, error)
	UpdateEvent(ctx context.Context, eventID, callerID string, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, eventID, callerID string) error
	DashboardStats(ctx context.Context, organizerID string) (*DashboardStats, error)
}
