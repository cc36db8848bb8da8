// Package rule defines priority rules over meeting slots and the predicate
// that matches slots against them.
package rule

import (
	"strconv"
	"strings"

	"github.com/ireyes/slotprio/internal/event"
)

// Kind identifies the rule variant.
type Kind string

const (
	KindDay       Kind = "day"        // all slots on a day
	KindDayTime   Kind = "day_time"   // slots on a day starting at an exact time
	KindTimeRange Kind = "time_range" // slots starting within [from, to], day-scoped or all days
	KindLocation  Kind = "location"   // slots at a location, day-scoped or all days
)

// AllDays is the in-band day wildcard for time_range and location rules.
// An absent or empty day is normalised to it at commit.
const AllDays = "All days"

// Priority bounds. Out-of-range values are clamped at commit.
const (
	MinPriority = 1
	MaxPriority = 100
)

// Valid reports whether k is a known rule variant.
func (k Kind) Valid() bool {
	switch k {
	case KindDay, KindDayTime, KindTimeRange, KindLocation:
		return true
	default:
		return false
	}
}

// Rule is a declarative predicate over slots carrying the priority assigned
// to matching slots. Only the fields of the rule's Kind are meaningful;
// the rest stay empty. Rules are immutable once committed.
type Rule struct {
	ID       int64 `json:"id"`
	Kind     Kind  `json:"type"`
	Priority int   `json:"priority"`

	Day      string `json:"day,omitempty"`
	Time     string `json:"time,omitempty"`
	TimeFrom string `json:"timeFrom,omitempty"`
	TimeTo   string `json:"timeTo,omitempty"`
	Location string `json:"location,omitempty"`
}

// Matches reports whether slot satisfies r. It is a pure function of its
// arguments: malformed or empty rule fields and unknown variants match
// nothing, and a time range with from > to matches nothing (no wrap-around).
func Matches(slot event.Slot, r Rule) bool {
	switch r.Kind {
	case KindDay:
		return r.Day != "" && slot.Day == r.Day
	case KindDayTime:
		return r.Day != "" && r.Time != "" && slot.Day == r.Day && slot.StartTime == r.Time
	case KindTimeRange:
		if r.TimeFrom == "" || r.TimeTo == "" || r.TimeFrom > r.TimeTo {
			return false
		}
		if !dayMatches(slot, r.Day) {
			return false
		}
		return slot.StartTime >= r.TimeFrom && slot.StartTime <= r.TimeTo
	case KindLocation:
		return r.Location != "" && slot.Location == r.Location && dayMatches(slot, r.Day)
	default:
		return false
	}
}

// dayMatches applies the day scope for the day-optional variants.
// Empty and AllDays both mean unrestricted.
func dayMatches(slot event.Slot, day string) bool {
	if day == "" || day == AllDays {
		return true
	}
	return slot.Day == day
}

// ClampPriority parses a raw priority input and clamps it to
// [MinPriority, MaxPriority]. Non-integer input falls back to MinPriority.
func ClampPriority(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = MinPriority
	}
	return clamp(n, MinPriority, MaxPriority)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Normalize returns a commit-ready copy of r: priority clamped and, for the
// day-optional variants, an absent day normalised to the AllDays wildcard.
// Fields not belonging to the rule's variant are cleared.
func Normalize(r Rule) Rule {
	n := Rule{ID: r.ID, Kind: r.Kind, Priority: clamp(r.Priority, MinPriority, MaxPriority)}
	switch r.Kind {
	case KindDay:
		n.Day = r.Day
	case KindDayTime:
		n.Day = r.Day
		n.Time = r.Time
	case KindTimeRange:
		n.Day = r.Day
		if n.Day == "" {
			n.Day = AllDays
		}
		n.TimeFrom = r.TimeFrom
		n.TimeTo = r.TimeTo
	case KindLocation:
		n.Day = r.Day
		if n.Day == "" {
			n.Day = AllDays
		}
		n.Location = r.Location
	}
	return n
}
