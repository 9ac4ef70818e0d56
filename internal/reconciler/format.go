package reconciler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aliskhannn/donorlink/internal/model"
)

// FormatTimestamp renders ts relative to now: "Just now", "5m ago", "3h ago",
// "2d ago", or the date as M/D/YYYY once it is a week old.
func FormatTimestamp(ts, now time.Time) string {
	diff := now.Sub(ts)

	mins := int(diff / time.Minute)
	hours := mins / 60
	days := hours / 24

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return ts.In(now.Location()).Format("1/2/2006")
	}
}

// BadgeLabel is the unread badge text; empty when there is nothing unread.
func BadgeLabel(unread int) string {
	switch {
	case unread <= 0:
		return ""
	case unread > 99:
		return "99+"
	default:
		return strconv.Itoa(unread)
	}
}

// Icon names the icon shown next to an entry of the given type.
func Icon(t model.EntryType) string {
	switch t {
	case model.EntryNewMatch, model.EntryMatchAccepted:
		return "heart"
	case model.EntryMatchDeclined:
		return "x"
	case model.EntryUrgentRequest:
		return "clock"
	default:
		return "bell"
	}
}
