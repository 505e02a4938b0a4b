package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"autoevents/internal/delivery/http/helpers"
	"autoevents/internal/delivery/http/middleware"
	"autoevents/internal/domain"
	"autoevents/internal/services"
)

// emailRegex matches a simple email format (local@domain with at least one
// dot in domain, no whitespace).
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dateLayouts are accepted for date fields, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseEventDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

type EventController struct {
	Logger      *slog.Logger
	Service     domain.EventService
	Environment string
	BaseURL     string
}

func NewEventController(logger *slog.Logger, svc domain.EventService, environment, baseURL string) *EventController {
	return &EventController{
		Logger:      logger,
		Service:     svc,
		Environment: environment,
		BaseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// CreateEventRequest is the request body for POST /events. Dates accept
// RFC3339, "2006-01-02T15:04:05", or "2006-01-02".
type CreateEventRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription *string  `json:"shortDescription"`
	StartDate        string   `json:"startDate"`
	EndDate          *string  `json:"endDate"`
	Location         string   `json:"location"`
	Address          *string  `json:"address"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	ImageURL         *string  `json:"imageUrl"`
	Images           []string `json:"images"`
	TicketPrice      *float64 `json:"ticketPrice"`
	TicketURL        *string  `json:"ticketUrl"`
	WebsiteURL       *string  `json:"websiteUrl"`
	ContactEmail     *string  `json:"contactEmail"`
	ContactPhone     *string  `json:"contactPhone"`
	Category         *string  `json:"category"`
	MaxAttendees     *int     `json:"maxAttendees"`
	Tags             []string `json:"tags"`
}

// Validate implements Validator. Reports all missing required fields in one message.
func (c CreateEventRequest) Validate() []string {
	var missing []string
	if c.Title == "" {
		missing = append(missing, "title")
	}
	if c.Description == "" {
		missing = append(missing, "description")
	}
	if c.StartDate == "" {
		missing = append(missing, "startDate")
	}
	if c.Location == "" {
		missing = append(missing, "location")
	}
	var errs []string
	if len(missing) > 0 {
		errs = append(errs, "missing required fields: "+strings.Join(missing, ", "))
	}
	if c.ContactEmail != nil && *c.ContactEmail != "" && !emailRegex.MatchString(*c.ContactEmail) {
		errs = append(errs, "contactEmail must be a valid email address")
	}
	if c.Latitude != nil && (*c.Latitude < -90 || *c.Latitude > 90) {
		errs = append(errs, "latitude must be between -90 and 90")
	}
	if c.Longitude != nil && (*c.Longitude < -180 || *c.Longitude > 180) {
		errs = append(errs, "longitude must be between -180 and 180")
	}
	return errs
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateEvent godoc
// @Summary Submit a new event listing
// @Description Create a new event listing. The authenticated user becomes the organizer. The event enters the moderation queue with status PENDING and category defaults to EXHIBITION when omitted.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	startDate, err := parseEventDate(req.StartDate)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid startDate")
		return
	}
	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		t, err := parseEventDate(*req.EndDate)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid endDate")
			return
		}
		endDate = &t
	}
	event := &domain.Event{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		StartDate:        startDate,
		EndDate:          endDate,
		Location:         req.Location,
		Address:          req.Address,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		ImageURL:         req.ImageURL,
		Images:           req.Images,
		TicketPrice:      req.TicketPrice,
		TicketURL:        req.TicketURL,
		WebsiteURL:       req.WebsiteURL,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		MaxAttendees:     req.MaxAttendees,
		Tags:             req.Tags,
		OrganizerID:      userID,
	}
	if req.Category != nil {
		event.Category = domain.EventCategory(*req.Category)
	}
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unknown organizer")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONInternalError(w, c.Environment, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEventsSuccessResponse is the success response envelope for GET /events without ?id (200).
type ListEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventSuccessResponse is the success response envelope for GET /events?id=... (200).
type GetEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEvents godoc
// @Summary List events or fetch one by id
// @Description Without query params, returns all events ordered by start date ascending. With ?id=..., returns that single event including its organizer. With ?when=today|past|upcoming, filters the list by day relative to the server clock. Public, no authentication.
// @Tags events
// @Produce json
// @Param id query string false "Event ID; when present a single event is returned"
// @Param when query string false "Time filter: today, past, or upcoming"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data is an array of events (or a single event with ?id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) GetEvents(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		event, err := c.Service.GetEventByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
				return
			}
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONInternalError(w, c.Environment, err)
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, event)
		return
	}

	scope := domain.ParseTimeScope(r.URL.Query().Get("when"))
	events, err := c.Service.ListEvents(r.Context(), scope)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONInternalError(w, c.Environment, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// UpdateEventRequest is the request body for PUT /events. ID selects the
// event; every other field is optional and unchanged when omitted.
type UpdateEventRequest struct {
	ID               string   `json:"id"`
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"shortDescription"`
	StartDate        *string  `json:"startDate"`
	EndDate          *string  `json:"endDate"`
	Location         *string  `json:"location"`
	Address          *string  `json:"address"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	ImageURL         *string  `json:"imageUrl"`
	Images           []string `json:"images"`
	TicketPrice      *float64 `json:"ticketPrice"`
	TicketURL        *string  `json:"ticketUrl"`
	WebsiteURL       *string  `json:"websiteUrl"`
	ContactEmail     *string  `json:"contactEmail"`
	ContactPhone     *string  `json:"contactPhone"`
	Category         *string  `json:"category"`
	Status           *string  `json:"status"`
	MaxAttendees     *int     `json:"maxAttendees"`
	CurrentAttendees *int     `json:"currentAttendees"`
	Tags             []string `json:"tags"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.ID == "" {
		errs = append(errs, "id is required")
	}
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	if u.ContactEmail != nil && *u.ContactEmail != "" && !emailRegex.MatchString(*u.ContactEmail) {
		errs = append(errs, "contactEmail must be a valid email address")
	}
	if u.Latitude != nil && (*u.Latitude < -90 || *u.Latitude > 90) {
		errs = append(errs, "latitude must be between -90 and 90")
	}
	if u.Longitude != nil && (*u.Longitude < -180 || *u.Longitude > 180) {
		errs = append(errs, "longitude must be between -180 and 180")
	}
	return errs
}

// UpdateEventSuccessResponse is the success response envelope for PUT /events (200).
type UpdateEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UpdateEvent godoc
// @Summary Update an event listing
// @Description Partially updates the event identified by the id field in the body. Omitted fields are unchanged. Only the organizer of the event can update it.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateEventRequest true "Event id plus fields to update"
// @Success 200 {object} controllers.UpdateEventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	upd := domain.EventUpdate{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Location:         req.Location,
		Address:          req.Address,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		ImageURL:         req.ImageURL,
		Images:           req.Images,
		TicketPrice:      req.TicketPrice,
		TicketURL:        req.TicketURL,
		WebsiteURL:       req.WebsiteURL,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		MaxAttendees:     req.MaxAttendees,
		CurrentAttendees: req.CurrentAttendees,
		Tags:             req.Tags,
	}
	if req.StartDate != nil {
		t, err := parseEventDate(*req.StartDate)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid startDate")
			return
		}
		upd.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := parseEventDate(*req.EndDate)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid endDate")
			return
		}
		upd.EndDate = &t
	}
	if req.Category != nil {
		cat := domain.EventCategory(*req.Category)
		upd.Category = &cat
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		upd.Status = &status
	}

	event, err := c.Service.UpdateEvent(r.Context(), req.ID, userID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONInternalError(w, c.Environment, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEventRequest is the request body for DELETE /events.
type DeleteEventRequest struct {
	ID string `json:"id"`
}

// Validate implements Validator.
func (d DeleteEventRequest) Validate() []string {
	if d.ID == "" {
		return []string{"id is required"}
	}
	return nil
}

// DeleteEventResponse is the data payload for DELETE /events (200).
type DeleteEventResponse struct {
	Status string `json:"status"`
}

// DeleteEventSuccessResponse is the success response envelope for DELETE /events (200).
type DeleteEventSuccessResponse struct {
	Data  DeleteEventResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// DeleteEvent godoc
// @Summary Delete an event listing
// @Description Deletes the event identified by the id field in the body. Only the organizer of the event can delete it.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body DeleteEventRequest true "Event id"
// @Success 200 {object} controllers.DeleteEventSuccessResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	var req DeleteEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), req.ID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONInternalError(w, c.Environment, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteEventResponse{Status: "deleted"})
}

// ListMyEventsResponse is the data payload for GET /events/me (200).
type ListMyEventsResponse struct {
	Items      []*domain.Event        `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListMyEventsSuccessResponse is the success response envelope for GET /events/me (200).
type ListMyEventsSuccessResponse struct {
	Data  ListMyEventsResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListMyEvents godoc
// @Summary List events organized by the current user
// @Description Returns a paginated list of events where the authenticated user is the organizer, newest first. Use page and page_size query params.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListMyEventsSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/me [get]
func (c *EventController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.ListEventsByOrganizer(r.Context(), userID, params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONInternalError(w, c.Environment, err)
		return
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListMyEventsResponse{Items: events, Pagination: meta})
}

// DashboardStatsSuccessResponse is the success response envelope for GET /dashboard/stats (200).
type DashboardStatsSuccessResponse struct {
	Data  *domain.DashboardStats `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// DashboardStats godoc
// @Summary Organizer dashboard counters
// @Description Returns event counts for the authenticated organizer: total, published, pending, and upcoming.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.DashboardStatsSuccessResponse "data contains the counters"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dashboard/stats [get]
func (c *EventController) DashboardStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	stats, err := c.Service.DashboardStats(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONInternalError(w, c.Environment, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

// DownloadCalendar godoc
// @Summary Download an event as an .ics file
// @Description Returns an iCalendar document for the event. Events without an end date get a two hour default duration. Public, no authentication.
// @Tags calendar
// @Produce text/calendar
// @Param eventID path string true "Event ID"
// @Success 200 {string} string "iCalendar document"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/calendar.ics [get]
func (c *EventController) DownloadCalendar(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONInternalError(w, c.Environment, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ICSFilename(event.Title)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(services.BuildICS(event)))
}

// GoogleCalendarLink godoc
// @Summary Redirect to a prefilled Google Calendar form
// @Description Responds with a 302 redirect to calendar.google.com with the event details prefilled. Public, no authentication.
// @Tags calendar
// @Param eventID path string true "Event ID"
// @Success 302 {string} string "redirect to Google Calendar"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/calendar/google [get]
func (c *EventController) GoogleCalendarLink(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONInternalError(w, c.Environment, err)
		return
	}
	http.Redirect(w, r, services.GoogleCalendarURL(event), http.StatusFound)
}

// ShareLinksSuccessResponse is the success response envelope for GET /events/{eventID}/share (200).
type ShareLinksSuccessResponse struct {
	Data  services.ShareLinks `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ShareLinks godoc
// @Summary Social share links for an event
// @Description Returns the public event page URL together with Twitter and Facebook share intent links. Public, no authentication.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.ShareLinksSuccessResponse "data contains the share links"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/share [get]
func (c *EventController) ShareLinks(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONInternalError(w, c.Environment, err)
		return
	}
	pageURL := fmt.Sprintf("%s/events/%s", c.BaseURL, event.ID)
	helpers.WriteJSONSuccess(w, http.StatusOK, services.BuildShareLinks(pageURL, event.Title))
}
