// Package integration exercises the full stack end to end: the editor's
// commit flow, the resolution engine's derived views, and SQLite
// persistence, over the default event catalogue.
package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ireyes/slotprio/internal/config"
	"github.com/ireyes/slotprio/internal/db"
	"github.com/ireyes/slotprio/internal/editor"
	"github.com/ireyes/slotprio/internal/engine"
	"github.com/ireyes/slotprio/internal/event"
	"github.com/ireyes/slotprio/internal/rule"
)

// catalogue bundles the default event's days, slots, and locations.
type catalogue struct {
	days      []event.Day
	slots     []event.Slot
	locations []string
}

func defaultCatalogue() catalogue {
	cfg := config.Default()
	days := cfg.Days()
	return catalogue{
		days:      days,
		slots:     event.Generate(days, cfg.Event.Slots),
		locations: event.Locations(cfg.Event.Slots),
	}
}

// openRepo creates a fresh rule store for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	repo, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func slotsOn(cat catalogue, day string) int {
	n := 0
	for _, s := range cat.slots {
		if s.Day == day {
			n++
		}
	}
	return n
}

func bucketCount(v engine.Views, priority int) int {
	for _, b := range v.Buckets {
		if !b.Unset && b.Priority == priority {
			return b.Count
		}
	}
	return 0
}

func unsetCount(v engine.Views) int {
	for _, b := range v.Buckets {
		if b.Unset {
			return b.Count
		}
	}
	return 0
}

func TestEmptyRules(t *testing.T) {
	cat := defaultCatalogue()
	v := engine.BuildViews(cat.slots, cat.days, nil)

	if unsetCount(v) != len(cat.slots) {
		t.Errorf("unset count = %d, want %d", unsetCount(v), len(cat.slots))
	}
	for _, day := range v.Timeline {
		if len(day.Groups) != 1 || !day.Groups[0].Unset {
			t.Fatalf("%s: groups = %+v, want one unset run", day.Day.Label, day.Groups)
		}
		g := day.Groups[0]
		if g.Count != slotsOn(cat, day.Day.Label) {
			t.Errorf("%s: run covers %d slots, want %d", day.Day.Label, g.Count, slotsOn(cat, day.Day.Label))
		}
	}
}

func TestSingleDayRule(t *testing.T) {
	cat := defaultCatalogue()
	mon := cat.days[0].Label
	rules := []rule.Rule{{ID: 0, Kind: rule.KindDay, Priority: 75, Day: mon}}

	v := engine.BuildViews(cat.slots, cat.days, rules)
	if got := bucketCount(v, 75); got != slotsOn(cat, mon) {
		t.Errorf("P75 count = %d, want %d", got, slotsOn(cat, mon))
	}
	if got := unsetCount(v); got != len(cat.slots)-slotsOn(cat, mon) {
		t.Errorf("unset count = %d, want %d", got, len(cat.slots)-slotsOn(cat, mon))
	}
}

func TestOverrideOrder(t *testing.T) {
	cat := defaultCatalogue()
	mon := cat.days[0].Label
	dayTime := rule.Rule{ID: 0, Kind: rule.KindDayTime, Priority: 100, Day: mon, Time: "09:00"}
	wholeDay := rule.Rule{ID: 1, Kind: rule.KindDay, Priority: 10, Day: mon}

	nineAM := 0
	for _, s := range cat.slots {
		if s.Day == mon && s.StartTime == "09:00" {
			nineAM++
		}
	}
	if nineAM == 0 {
		t.Fatal("catalogue has no 09:00 Monday slots")
	}

	v := engine.BuildViews(cat.slots, cat.days, []rule.Rule{dayTime, wholeDay})
	if got := bucketCount(v, 100); got != nineAM {
		t.Errorf("P100 count = %d, want %d", got, nineAM)
	}
	if got := bucketCount(v, 10); got != slotsOn(cat, mon)-nineAM {
		t.Errorf("P10 count = %d, want %d", got, slotsOn(cat, mon)-nineAM)
	}

	// With the whole-day rule first, it shadows the 09:00 rule entirely.
	v = engine.BuildViews(cat.slots, cat.days, []rule.Rule{wholeDay, dayTime})
	if got := bucketCount(v, 100); got != 0 {
		t.Errorf("P100 count after swap = %d, want 0", got)
	}
	if got := bucketCount(v, 10); got != slotsOn(cat, mon) {
		t.Errorf("P10 count after swap = %d, want %d", got, slotsOn(cat, mon))
	}
}

func TestTimeRangeAllDays(t *testing.T) {
	cat := defaultCatalogue()
	rules := []rule.Rule{{
		ID: 0, Kind: rule.KindTimeRange, Priority: 50,
		Day: rule.AllDays, TimeFrom: "10:00", TimeTo: "10:59",
	}}

	want := 0
	for _, s := range cat.slots {
		if s.StartTime >= "10:00" && s.StartTime <= "10:59" {
			want++
		}
	}

	v := engine.BuildViews(cat.slots, cat.days, rules)
	if got := bucketCount(v, 50); got != want {
		t.Errorf("P50 count = %d, want %d", got, want)
	}
}

func TestClampOnCommit(t *testing.T) {
	cat := defaultCatalogue()
	tests := []struct {
		raw  string
		want int
	}{
		{"999", 100},
		{"-5", 1},
		{"abc", 1},
	}
	for _, tt := range tests {
		ed := editor.New(cat.days, cat.locations, nil)
		ed.OpenCreate()
		ed.UpdateDraft(editor.FieldPriority, tt.raw)
		if !ed.Confirm() {
			t.Fatalf("Confirm refused for priority %q", tt.raw)
		}
		if got := ed.Rules()[0].Priority; got != tt.want {
			t.Errorf("priority %q committed as %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestEditCancelIsolation(t *testing.T) {
	cat := defaultCatalogue()
	ed := editor.New(cat.days, cat.locations, nil)

	ed.OpenCreate()
	ed.UpdateDraft(editor.FieldPriority, "10")
	ed.Confirm()
	committed := ed.Rules()

	id := committed[0].ID
	ed.OpenEdit(id)
	ed.UpdateDraft(editor.FieldPriority, "42")

	// The filtered preview exists while the draft is open.
	tl := engine.PreviewTimeline(cat.slots, cat.days, ed.Rules(), ed.Draft().Rule())
	if len(tl) != len(cat.days) {
		t.Fatalf("preview has %d days, want %d", len(tl), len(cat.days))
	}

	ed.Cancel()
	after := ed.Rules()
	if len(after) != 1 || after[0] != committed[0] {
		t.Errorf("cancel changed the committed rule: %+v -> %+v", committed[0], after[0])
	}
	if ed.Draft() != nil {
		t.Error("draft survived cancel")
	}
}

func TestEditorPersistenceRoundTrip(t *testing.T) {
	cat := defaultCatalogue()
	repo := openRepo(t)
	ctx := context.Background()

	// Build a rule list through the editor, as the TUI would.
	ed := editor.New(cat.days, cat.locations, nil)
	ed.OpenCreate()
	ed.UpdateDraft(editor.FieldDay, cat.days[1].Label)
	ed.UpdateDraft(editor.FieldPriority, "5")
	ed.Confirm()
	ed.OpenCreate()
	ed.UpdateDraft(editor.FieldKind, string(rule.KindLocation))
	ed.UpdateDraft(editor.FieldLocation, cat.locations[0])
	ed.UpdateDraft(editor.FieldPriority, "40")
	ed.Confirm()
	ed.Reorder(ed.Rules()[1].ID, -1)

	if err := repo.SaveRules(ctx, ed.Rules()); err != nil {
		t.Fatalf("SaveRules failed: %v", err)
	}

	loaded, err := repo.LoadRules(ctx)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}

	// A fresh editor over the loaded rules resolves identically.
	want := engine.BuildViews(cat.slots, cat.days, ed.Rules())
	restored := editor.New(cat.days, cat.locations, loaded)
	got := engine.BuildViews(cat.slots, cat.days, restored.Rules())

	if len(got.Buckets) != len(want.Buckets) {
		t.Fatalf("buckets after reload = %+v, want %+v", got.Buckets, want.Buckets)
	}
	for i := range want.Buckets {
		if got.Buckets[i] != want.Buckets[i] {
			t.Errorf("bucket %d = %+v, want %+v", i, got.Buckets[i], want.Buckets[i])
		}
	}

	// Fresh ids continue after the reloaded ones.
	restored.OpenCreate()
	restored.Confirm()
	rules := restored.Rules()
	if rules[len(rules)-1].ID != 2 {
		t.Errorf("next id = %d, want 2", rules[len(rules)-1].ID)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	cat := defaultCatalogue()
	rules := []rule.Rule{
		{ID: 0, Kind: rule.KindDay, Priority: 75, Day: cat.days[0].Label},
		{ID: 1, Kind: rule.KindTimeRange, Priority: 50, Day: rule.AllDays, TimeFrom: "10:00", TimeTo: "10:59"},
	}

	data, err := rule.EncodeJSON(rules)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	decoded, err := rule.DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	want := engine.BuildViews(cat.slots, cat.days, rules)
	got := engine.BuildViews(cat.slots, cat.days, decoded)
	if len(got.Buckets) != len(want.Buckets) {
		t.Fatalf("buckets = %+v, want %+v", got.Buckets, want.Buckets)
	}
	for i := range want.Buckets {
		if got.Buckets[i] != want.Buckets[i] {
			t.Errorf("bucket %d = %+v, want %+v", i, got.Buckets[i], want.Buckets[i])
		}
	}
}
