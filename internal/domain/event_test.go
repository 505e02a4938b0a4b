package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeScope(t *testing.T) {
	tests := []struct {
		in   string
		want TimeScope
	}{
		{"today", ScopeToday},
		{"past", ScopePast},
		{"upcoming", ScopeUpcoming},
		{"", ScopeAll},
		{"tomorrow", ScopeAll},
		{"TODAY", ScopeAll},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTimeScope(tt.in), "input %q", tt.in)
	}
}

func TestFilterEventsByScope(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := &Event{ID: "e-yesterday", StartDate: now.Add(-24 * time.Hour)}
	todayMorning := &Event{ID: "e-today", StartDate: time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)}
	tomorrow := &Event{ID: "e-tomorrow", StartDate: now.Add(24 * time.Hour)}

	tests := []struct {
		name    string
		events  []*Event
		scope   TimeScope
		wantIDs []string
	}{
		{
			name:    "today keeps only the same calendar day regardless of order",
			events:  []*Event{tomorrow, yesterday, todayMorning},
			scope:   ScopeToday,
			wantIDs: []string{"e-today"},
		},
		{
			name:    "today matches even when the start time already passed",
			events:  []*Event{todayMorning},
			scope:   ScopeToday,
			wantIDs: []string{"e-today"},
		},
		{
			name:    "past is strictly before now",
			events:  []*Event{yesterday, todayMorning, tomorrow},
			scope:   ScopePast,
			wantIDs: []string{"e-yesterday", "e-today"},
		},
		{
			name:    "upcoming is now or later",
			events:  []*Event{yesterday, todayMorning, tomorrow},
			scope:   ScopeUpcoming,
			wantIDs: []string{"e-tomorrow"},
		},
		{
			name:    "all returns input unchanged",
			events:  []*Event{yesterday, tomorrow},
			scope:   ScopeAll,
			wantIDs: []string{"e-yesterday", "e-tomorrow"},
		},
		{
			name:    "empty input",
			events:  []*Event{},
			scope:   ScopeToday,
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEventsByScope(tt.events, tt.scope, now)
			require.Len(t, got, len(tt.wantIDs))
			for i, e := range got {
				assert.Equal(t, tt.wantIDs[i], e.ID)
			}
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range EventCategories {
		assert.True(t, ValidCategory(c), "category %s", c)
	}
	assert.False(t, ValidCategory("MOTOCROSS"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("rally"))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []EventStatus{StatusPending, StatusApproved, StatusPublished, StatusRejected, StatusCancelled} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("DRAFT"))
	assert.False(t, ValidStatus(""))
}
