// Package engine resolves slot priorities from an ordered rule list and
// projects the result into the derived views consumed by the UI: bucket
// counts per priority and a per-day run-length-encoded timeline.
package engine

import (
	"sort"

	"github.com/ireyes/slotprio/internal/event"
	"github.com/ireyes/slotprio/internal/rule"
)

// Resolve returns the priority of the first rule matching slot, in list
// order. ok is false when no rule matches (the "unset" sentinel).
func Resolve(slot event.Slot, rules []rule.Rule) (priority int, ok bool) {
	for _, r := range rules {
		if rule.Matches(slot, r) {
			return r.Priority, true
		}
	}
	return 0, false
}

// MatchCount returns how many slots of the catalogue match r.
func MatchCount(slots []event.Slot, r rule.Rule) int {
	n := 0
	for _, s := range slots {
		if rule.Matches(s, r) {
			n++
		}
	}
	return n
}

// Bucket is the slot count for one resolved priority value, or for the
// unset sentinel.
type Bucket struct {
	Priority int
	Unset    bool
	Count    int
}

// Group is a run of consecutive same-day slots sharing one resolved
// priority, coalesced into a single timeline row.
type Group struct {
	StartTime string // first slot's start
	EndTime   string // last slot's end
	Count     int
	Priority  int
	Unset     bool
}

// DayTimeline holds one event day's coalesced groups. Groups is empty for
// a day with no (matching) slots.
type DayTimeline struct {
	Day    event.Day
	Groups []Group
}

// Views bundles the two projections derived from one rule list.
type Views struct {
	Total    int
	Buckets  []Bucket // numeric priorities ascending, unset last
	Timeline []DayTimeline
}

// BuildViews computes bucket counts and the per-day timeline for the full
// catalogue. Recomputation is a naive full pass: the catalogue is at most
// a few hundred slots, so every edit can afford it.
func BuildViews(slots []event.Slot, days []event.Day, rules []rule.Rule) Views {
	sorted := event.Sorted(slots, days)

	counts := make(map[int]int)
	unset := 0
	for _, s := range sorted {
		if p, ok := Resolve(s, rules); ok {
			counts[p]++
		} else {
			unset++
		}
	}

	keys := make([]int, 0, len(counts))
	for p := range counts {
		keys = append(keys, p)
	}
	sort.Ints(keys)

	buckets := make([]Bucket, 0, len(keys)+1)
	for _, p := range keys {
		buckets = append(buckets, Bucket{Priority: p, Count: counts[p]})
	}
	if unset > 0 {
		buckets = append(buckets, Bucket{Unset: true, Count: unset})
	}

	return Views{
		Total:    len(slots),
		Buckets:  buckets,
		Timeline: timeline(sorted, days, rules),
	}
}

// PreviewTimeline computes the timeline over only the slots matching
// draft, so an in-progress rule shows what it would touch. Priorities
// still come from the committed rules; the draft filters, it does not
// resolve.
func PreviewTimeline(slots []event.Slot, days []event.Day, rules []rule.Rule, draft rule.Rule) []DayTimeline {
	var filtered []event.Slot
	for _, s := range slots {
		if rule.Matches(s, draft) {
			filtered = append(filtered, s)
		}
	}
	return timeline(event.Sorted(filtered, days), days, rules)
}

// timeline folds day-sorted slots into runs, opening a new group whenever
// the resolved priority differs from the previous slot's.
func timeline(sorted []event.Slot, days []event.Day, rules []rule.Rule) []DayTimeline {
	byDay := make(map[string][]event.Slot, len(days))
	for _, s := range sorted {
		byDay[s.Day] = append(byDay[s.Day], s)
	}

	result := make([]DayTimeline, 0, len(days))
	for _, day := range days {
		daySlots := byDay[day.Label]
		var groups []Group
		for _, s := range daySlots {
			p, ok := Resolve(s, rules)
			if n := len(groups); n > 0 {
				last := &groups[n-1]
				samePriority := (last.Unset && !ok) || (!last.Unset && ok && last.Priority == p)
				if samePriority {
					last.EndTime = s.EndTime
					last.Count++
					continue
				}
			}
			groups = append(groups, Group{
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				Count:     1,
				Priority:  p,
				Unset:     !ok,
			})
		}
		result = append(result, DayTimeline{Day: day, Groups: groups})
	}
	return result
}
