package engine

import (
	"testing"

	"github.com/ireyes/slotprio/internal/config"
	"github.com/ireyes/slotprio/internal/event"
	"github.com/ireyes/slotprio/internal/rule"
)

var testDays = []event.Day{
	{Label: "Monday 20 Jan", Short: "Mon 20 Jan"},
	{Label: "Tuesday 21 Jan", Short: "Tue 21 Jan"},
}

// singleTrack is one location with six back-to-back 30 minute slots per
// day, 09:00 through 12:00.
var singleTrack = []event.SlotConfig{
	{Location: "Booth A1", StartHour: 9, StartMinute: 0, Duration: 30, Gap: 0, Count: 6},
}

func TestResolveFirstMatchWins(t *testing.T) {
	s := event.Slot{Day: "Tuesday 21 Jan", StartTime: "09:00", Location: "Booth A1"}
	rules := []rule.Rule{
		{Kind: rule.KindDay, Priority: 10, Day: "Tuesday 21 Jan"},
		{Kind: rule.KindLocation, Priority: 90, Day: rule.AllDays, Location: "Booth A1"},
	}

	p, ok := Resolve(s, rules)
	if !ok || p != 10 {
		t.Fatalf("Resolve = (%d, %v), want (10, true)", p, ok)
	}

	// Swapping the order flips the winner even though both still match.
	rules[0], rules[1] = rules[1], rules[0]
	p, ok = Resolve(s, rules)
	if !ok || p != 90 {
		t.Fatalf("Resolve after swap = (%d, %v), want (90, true)", p, ok)
	}
}

func TestResolveUnset(t *testing.T) {
	s := event.Slot{Day: "Monday 20 Jan", StartTime: "09:00", Location: "Booth A1"}
	if _, ok := Resolve(s, nil); ok {
		t.Error("Resolve with no rules reported a match")
	}
	rules := []rule.Rule{{Kind: rule.KindDay, Priority: 10, Day: "Tuesday 21 Jan"}}
	if _, ok := Resolve(s, rules); ok {
		t.Error("Resolve reported a match for a non-matching rule")
	}
}

func TestMatchCount(t *testing.T) {
	slots := event.Generate(testDays, singleTrack)
	r := rule.Rule{Kind: rule.KindDay, Priority: 10, Day: "Tuesday 21 Jan"}
	if got := MatchCount(slots, r); got != 6 {
		t.Errorf("MatchCount = %d, want 6", got)
	}
}

func TestBuildViewsBuckets(t *testing.T) {
	slots := event.Generate(testDays, singleTrack)
	rules := []rule.Rule{
		{ID: 0, Kind: rule.KindDay, Priority: 70, Day: "Tuesday 21 Jan"},
		{ID: 1, Kind: rule.KindTimeRange, Priority: 10, Day: "Monday 20 Jan", TimeFrom: "09:00", TimeTo: "09:59"},
	}

	v := BuildViews(slots, testDays, rules)
	if v.Total != 12 {
		t.Fatalf("Total = %d, want 12", v.Total)
	}

	// Ascending priorities, unset last: 2 Monday morning slots at 10,
	// all 6 Tuesday slots at 70, the remaining 4 unset.
	want := []Bucket{
		{Priority: 10, Count: 2},
		{Priority: 70, Count: 6},
		{Unset: true, Count: 4},
	}
	if len(v.Buckets) != len(want) {
		t.Fatalf("got %d buckets, want %d: %+v", len(v.Buckets), len(want), v.Buckets)
	}
	for i, w := range want {
		if v.Buckets[i] != w {
			t.Errorf("bucket %d = %+v, want %+v", i, v.Buckets[i], w)
		}
	}
}

func TestBucketsSumToTotal(t *testing.T) {
	cfg := config.Default()
	days := cfg.Days()
	slots := event.Generate(days, cfg.Event.Slots)
	rules := []rule.Rule{
		{ID: 0, Kind: rule.KindDay, Priority: 5, Day: days[1].Label},
		{ID: 1, Kind: rule.KindLocation, Priority: 40, Day: rule.AllDays, Location: "Public Lounge"},
		{ID: 2, Kind: rule.KindTimeRange, Priority: 40, TimeFrom: "09:00", TimeTo: "10:00"},
	}

	v := BuildViews(slots, days, rules)
	sum := 0
	for _, b := range v.Buckets {
		sum += b.Count
	}
	if sum != v.Total || v.Total != len(slots) {
		t.Errorf("bucket counts sum to %d, total %d, slots %d", sum, v.Total, len(slots))
	}
	// Equal priorities from different rules share one bucket.
	for i := 1; i < len(v.Buckets); i++ {
		if !v.Buckets[i].Unset && v.Buckets[i].Priority <= v.Buckets[i-1].Priority {
			t.Errorf("buckets not strictly ascending: %+v", v.Buckets)
		}
	}
}

func TestTimelineCoalescing(t *testing.T) {
	slots := event.Generate(testDays[:1], singleTrack)
	rules := []rule.Rule{
		{ID: 0, Kind: rule.KindTimeRange, Priority: 25, TimeFrom: "10:00", TimeTo: "10:59"},
	}

	v := BuildViews(slots, testDays[:1], rules)
	if len(v.Timeline) != 1 {
		t.Fatalf("got %d timeline days, want 1", len(v.Timeline))
	}
	groups := v.Timeline[0].Groups

	// unset 09:00-10:00 (2 slots), P25 10:00-11:00 (2), unset 11:00-12:00 (2)
	want := []Group{
		{StartTime: "09:00", EndTime: "10:00", Count: 2, Unset: true},
		{StartTime: "10:00", EndTime: "11:00", Count: 2, Priority: 25},
		{StartTime: "11:00", EndTime: "12:00", Count: 2, Unset: true},
	}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d: %+v", len(groups), len(want), groups)
	}
	for i, w := range want {
		if groups[i] != w {
			t.Errorf("group %d = %+v, want %+v", i, groups[i], w)
		}
	}
}

func TestTimelineAdjacentGroupsDiffer(t *testing.T) {
	cfg := config.Default()
	days := cfg.Days()
	slots := event.Generate(days, cfg.Event.Slots)
	rules := []rule.Rule{
		{ID: 0, Kind: rule.KindTimeRange, Priority: 30, TimeFrom: "09:00", TimeTo: "09:30"},
		{ID: 1, Kind: rule.KindLocation, Priority: 30, Day: rule.AllDays, Location: "Table 1"},
	}

	v := BuildViews(slots, days, rules)
	for _, day := range v.Timeline {
		total := 0
		for i, g := range day.Groups {
			total += g.Count
			if g.Count < 1 {
				t.Errorf("%s: empty group %+v", day.Day.Label, g)
			}
			if i == 0 {
				continue
			}
			prev := day.Groups[i-1]
			if prev.Unset == g.Unset && (g.Unset || prev.Priority == g.Priority) {
				t.Errorf("%s: adjacent groups %d and %d share a priority", day.Day.Label, i-1, i)
			}
		}
		if total != len(slots)/len(days) {
			t.Errorf("%s: groups cover %d slots, want %d", day.Day.Label, total, len(slots)/len(days))
		}
	}
}

func TestTimelineNoRules(t *testing.T) {
	slots := event.Generate(testDays, singleTrack)
	v := BuildViews(slots, testDays, nil)

	for _, day := range v.Timeline {
		if len(day.Groups) != 1 {
			t.Fatalf("%s: got %d groups, want 1", day.Day.Label, len(day.Groups))
		}
		g := day.Groups[0]
		if !g.Unset || g.Count != 6 || g.StartTime != "09:00" || g.EndTime != "12:00" {
			t.Errorf("%s: group = %+v, want one unset run over the whole day", day.Day.Label, g)
		}
	}
	if len(v.Buckets) != 1 || !v.Buckets[0].Unset || v.Buckets[0].Count != 12 {
		t.Errorf("Buckets = %+v, want a single unset bucket of 12", v.Buckets)
	}
}

func TestPreviewTimelineFiltersByDraft(t *testing.T) {
	cfg := config.Default()
	days := cfg.Days()
	slots := event.Generate(days, cfg.Event.Slots)
	committed := []rule.Rule{
		{ID: 0, Kind: rule.KindDay, Priority: 5, Day: days[1].Label},
	}
	draft := rule.Rule{Kind: rule.KindLocation, Priority: 80, Day: rule.AllDays, Location: "Booth A1"}

	tl := PreviewTimeline(slots, days, committed, draft)
	if len(tl) != len(days) {
		t.Fatalf("got %d timeline days, want %d", len(tl), len(days))
	}

	total := 0
	for i, day := range tl {
		for _, g := range day.Groups {
			total += g.Count
			// Priorities come from the committed rules, never the draft.
			if g.Priority == 80 {
				t.Errorf("%s: group resolved to the draft's priority: %+v", day.Day.Label, g)
			}
			if i == 1 && (g.Unset || g.Priority != 5) {
				t.Errorf("%s: group = %+v, want committed priority 5", day.Day.Label, g)
			}
			if i != 1 && !g.Unset {
				t.Errorf("%s: group = %+v, want unset", day.Day.Label, g)
			}
		}
	}
	// Booth A1 has 8 slots per day.
	if total != 8*len(days) {
		t.Errorf("preview covers %d slots, want %d", total, 8*len(days))
	}
}

func TestPreviewTimelineNoMatches(t *testing.T) {
	slots := event.Generate(testDays, singleTrack)
	draft := rule.Rule{Kind: rule.KindLocation, Priority: 80, Day: rule.AllDays, Location: "Nowhere"}

	tl := PreviewTimeline(slots, testDays, nil, draft)
	for _, day := range tl {
		if len(day.Groups) != 0 {
			t.Errorf("%s: got %d groups, want 0", day.Day.Label, len(day.Groups))
		}
	}
}
