package reconciler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/donorlink/internal/model"
)

func TestFormatTimestamp(t *testing.T) {
	now := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"30 seconds", now.Add(-30 * time.Second), "Just now"},
		{"future", now.Add(time.Minute), "Just now"},
		{"1 minute", now.Add(-time.Minute), "1m ago"},
		{"5 minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"59 minutes", now.Add(-59*time.Minute - 59*time.Second), "59m ago"},
		{"3 hours", now.Add(-3 * time.Hour), "3h ago"},
		{"23 hours", now.Add(-23 * time.Hour), "23h ago"},
		{"2 days", now.Add(-49 * time.Hour), "2d ago"},
		{"6 days", now.Add(-6 * 24 * time.Hour), "6d ago"},
		{"10 days", now.Add(-10 * 24 * time.Hour), "4/10/2025"},
		{"last year", time.Date(2024, 12, 3, 8, 0, 0, 0, time.UTC), "12/3/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.ts, now))
		})
	}
}

func TestBadgeLabel(t *testing.T) {
	assert.Equal(t, "", BadgeLabel(0))
	assert.Equal(t, "1", BadgeLabel(1))
	assert.Equal(t, "99", BadgeLabel(99))
	assert.Equal(t, "99+", BadgeLabel(100))
	assert.Equal(t, "99+", BadgeLabel(1500))
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "heart", Icon(model.EntryNewMatch))
	assert.Equal(t, "heart", Icon(model.EntryMatchAccepted))
	assert.Equal(t, "x", Icon(model.EntryMatchDeclined))
	assert.Equal(t, "clock", Icon(model.EntryUrgentRequest))
	assert.Equal(t, "bell", Icon(model.EntryType("system")))
}
