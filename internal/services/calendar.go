package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"autoevents/internal/domain"
)

// defaultEventDuration is assumed when an event has no end date.
const defaultEventDuration = 2 * time.Hour

const icsTimeLayout = "20060102T150405Z"

// ShareLinks holds social share URLs for an event page.
type ShareLinks struct {
	URL      string `json:"url"`
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
}

func eventEndDate(e *domain.Event) time.Time {
	if e.EndDate != nil {
		return *e.EndDate
	}
	return e.StartDate.Add(defaultEventDuration)
}

func eventCalendarLocation(e *domain.Event) string {
	if e.Address != nil && *e.Address != "" {
		return *e.Address
	}
	return e.Location
}

// BuildICS renders an iCalendar document for a single event.
func BuildICS(e *domain.Event) string {
	start := e.StartDate.UTC().Format(icsTimeLayout)
	end := eventEndDate(e).UTC().Format(icsTimeLayout)
	description := strings.ReplaceAll(e.Description, "\n", "\\n")

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//AutoEvents//Event Calendar//EN",
		"BEGIN:VEVENT",
		fmt.Sprintf("DTSTART:%s", start),
		fmt.Sprintf("DTEND:%s", end),
		fmt.Sprintf("SUMMARY:%s", e.Title),
		fmt.Sprintf("DESCRIPTION:%s", description),
		fmt.Sprintf("LOCATION:%s", eventCalendarLocation(e)),
		fmt.Sprintf("UID:%s@autoevents.com", uuid.NewString()),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}

var icsFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ICSFilename derives a download filename from the event title.
func ICSFilename(title string) string {
	return strings.ToLower(icsFilenameRe.ReplaceAllString(title, "_")) + ".ics"
}

// GoogleCalendarURL builds a prefilled Google Calendar event link.
func GoogleCalendarURL(e *domain.Event) string {
	start := e.StartDate.UTC().Format(icsTimeLayout)
	end := eventEndDate(e).UTC().Format(icsTimeLayout)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", e.Title)
	params.Set("dates", fmt.Sprintf("%s/%s", start, end))
	params.Set("details", e.Description)
	params.Set("location", eventCalendarLocation(e))
	return "https://calendar.google.com/calendar/render?" + params.Encode()
}

// BuildShareLinks builds social share intent URLs for the event page URL.
func BuildShareLinks(pageURL, title string) ShareLinks {
	return ShareLinks{
		URL: pageURL,
		Twitter: fmt.Sprintf("https://twitter.com/intent/tweet?text=%s&url=%s",
			url.QueryEscape(title), url.QueryEscape(pageURL)),
		Facebook: fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s",
			url.QueryEscape(pageURL)),
	}
}
