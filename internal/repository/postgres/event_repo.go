package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"autoevents/internal/domain"
)

// eventColumns is the column list shared by every event SELECT.
const eventColumns = `e.id, e.title, e.description, e.short_description, e.start_date, e.end_date,
		e.location, e.address, e.latitude, e.longitude, e.image_url, e.images,
		e.ticket_price, e.ticket_url, e.website_url, e.contact_email, e.contact_phone,
		e.category, e.status, e.max_attendees, e.current_attendees, e.tags,
		e.organizer_id, e.created_at, e.updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (
			title, description, short_description, start_date, end_date,
			location, address, latitude, longitude, image_url, images,
			ticket_price, ticket_url, website_url, contact_email, contact_phone,
			category, status, max_attendees, current_attendees, tags,
			organizer_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.ShortDescription, e.StartDate, e.EndDate,
		e.Location, e.Address, e.Latitude, e.Longitude, e.ImageURL, pq.Array(e.Images),
		e.TicketPrice, e.TicketURL, e.WebsiteURL, e.ContactEmail, e.ContactPhone,
		string(e.Category), string(e.Status), e.MaxAttendees, e.CurrentAttendees, pq.Array(e.Tags),
		e.OrganizerID, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// eventNullables holds the scan targets for nullable event columns.
type eventNullables struct {
	shortDesc, address, imageURL, ticketURL, websiteURL sql.NullString
	contactEmail, contactPhone                          sql.NullString
	endDate                                             sql.NullTime
	lat, lng, ticketPrice                               sql.NullFloat64
	maxAttendees                                        sql.NullInt64
	category, status                                    string
}

func (n *eventNullables) apply(e *domain.Event) {
	if n.shortDesc.Valid {
		e.ShortDescription = &n.shortDesc.String
	}
	if n.endDate.Valid {
		e.EndDate = &n.endDate.Time
	}
	if n.address.Valid {
		e.Address = &n.address.String
	}
	if n.lat.Valid {
		e.Latitude = &n.lat.Float64
	}
	if n.lng.Valid {
		e.Longitude = &n.lng.Float64
	}
	if n.imageURL.Valid {
		e.ImageURL = &n.imageURL.String
	}
	if n.ticketPrice.Valid {
		e.TicketPrice = &n.ticketPrice.Float64
	}
	if n.ticketURL.Valid {
		e.TicketURL = &n.ticketURL.String
	}
	if n.websiteURL.Valid {
		e.WebsiteURL = &n.websiteURL.String
	}
	if n.contactEmail.Valid {
		e.ContactEmail = &n.contactEmail.String
	}
	if n.contactPhone.Valid {
		e.ContactPhone = &n.contactPhone.String
	}
	if n.maxAttendees.Valid {
		v := int(n.maxAttendees.Int64)
		e.MaxAttendees = &v
	}
	e.Category = domain.EventCategory(n.category)
	e.Status = domain.EventStatus(n.status)
	if e.Images == nil {
		e.Images = []string{}
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
}

func (n *eventNullables) targets(e *domain.Event) []any {
	return []any{
		&e.ID, &e.Title, &e.Description, &n.shortDesc, &e.StartDate, &n.endDate,
		&e.Location, &n.address, &n.lat, &n.lng, &n.imageURL, pq.Array(&e.Images),
		&n.ticketPrice, &n.ticketURL, &n.websiteURL, &n.contactEmail, &n.contactPhone,
		&n.category, &n.status, &n.maxAttendees, &e.CurrentAttendees, pq.Array(&e.Tags),
		&e.OrganizerID, &e.CreatedAt, &e.UpdatedAt,
	}
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var nulls eventNullables
	if err := row.Scan(nulls.targets(e)...); err != nil {
		return nil, err
	}
	nulls.apply(e)
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.id, u.name, u.email
		FROM events e
		JOIN users u ON u.id = e.organizer_id
		WHERE e.id = $1
	`, eventColumns)

	e := &domain.Event{}
	var nulls eventNullables
	var organizer domain.OrganizerSummary
	targets := append(nulls.targets(e), &organizer.ID, &organizer.Name, &organizer.Email)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(targets...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	nulls.apply(e)
	e.Organizer = &organizer
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events e
		ORDER BY e.start_date ASC
	`, eventColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) ListByOrganizerID(ctx context.Context, organizerID string, params domain.PaginationParams) ([]*domain.Event, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM events WHERE organizer_id = $1`
	if err := r.DB.QueryRowContext(ctx, countQuery, organizerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events e
		WHERE e.organizer_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2 OFFSET $3
	`, eventColumns)
	rows, err := r.DB.QueryContext(ctx, query, organizerID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	setClauses := []string{}
	args := []any{}
	n := 1
	add := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.ShortDescription != nil {
		add("short_description", *upd.ShortDescription)
	}
	if upd.StartDate != nil {
		add("start_date", *upd.StartDate)
	}
	if upd.EndDate != nil {
		add("end_date", *upd.EndDate)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Address != nil {
		add("address", *upd.Address)
	}
	if upd.Latitude != nil {
		add("latitude", *upd.Latitude)
	}
	if upd.Longitude != nil {
		add("longitude", *upd.Longitude)
	}
	if upd.ImageURL != nil {
		add("image_url", *upd.ImageURL)
	}
	if upd.Images != nil {
		add("images", pq.Array(upd.Images))
	}
	if upd.TicketPrice != nil {
		add("ticket_price", *upd.TicketPrice)
	}
	if upd.TicketURL != nil {
		add("ticket_url", *upd.TicketURL)
	}
	if upd.WebsiteURL != nil {
		add("website_url", *upd.WebsiteURL)
	}
	if upd.ContactEmail != nil {
		add("contact_email", *upd.ContactEmail)
	}
	if upd.ContactPhone != nil {
		add("contact_phone", *upd.ContactPhone)
	}
	if upd.Category != nil {
		add("category", string(*upd.Category))
	}
	if upd.Status != nil {
		add("status", string(*upd.Status))
	}
	if upd.MaxAttendees != nil {
		add("max_attendees", *upd.MaxAttendees)
	}
	if upd.CurrentAttendees != nil {
		add("current_attendees", *upd.CurrentAttendees)
	}
	if upd.Tags != nil {
		add("tags", pq.Array(upd.Tags))
	}
	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events e SET %s
		WHERE e.id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) StatsByOrganizerID(ctx context.Context, organizerID string, now time.Time) (*domain.DashboardStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PUBLISHED'),
			COUNT(*) FILTER (WHERE status = 'PENDING'),
			COUNT(*) FILTER (WHERE start_date >= $2)
		FROM events
		WHERE organizer_id = $1
	`
	stats := &domain.DashboardStats{}
	err := r.DB.QueryRowContext(ctx, query, organizerID, now).Scan(
		&stats.TotalEvents, &stats.PublishedCount, &stats.PendingCount, &stats.UpcomingCount,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
