package editor

import (
	"strconv"

	"github.com/ireyes/slotprio/internal/event"
	"github.com/ireyes/slotprio/internal/rule"
)

// Field names a draft field for UpdateDraft.
type Field string

const (
	FieldKind     Field = "kind"
	FieldDay      Field = "day"
	FieldTime     Field = "time"
	FieldTimeFrom Field = "time_from"
	FieldTimeTo   Field = "time_to"
	FieldLocation Field = "location"
	FieldPriority Field = "priority"
)

// Default draft values. Priority is held raw so out-of-range or
// non-numeric input survives until clamp-at-commit.
const (
	defaultTime     = "09:00"
	defaultTimeFrom = "09:00"
	defaultTimeTo   = "11:00"
	defaultPriority = "50"
)

// Draft is an uncommitted working copy of a rule. It carries every
// variant's fields at once so switching the variant preserves whatever is
// compatible; fields not belonging to the final variant are dropped at
// commit by rule.Normalize.
type Draft struct {
	Kind        rule.Kind
	Day         string
	Time        string
	TimeFrom    string
	TimeTo      string
	Location    string
	PriorityRaw string
}

func newDraft(days []event.Day, locations []string) *Draft {
	d := &Draft{
		Kind:        rule.KindDay,
		Time:        defaultTime,
		TimeFrom:    defaultTimeFrom,
		TimeTo:      defaultTimeTo,
		PriorityRaw: defaultPriority,
	}
	if len(days) > 0 {
		d.Day = days[0].Label
	}
	if len(locations) > 0 {
		d.Location = locations[0]
	}
	return d
}

// draftFromRule snapshots a committed rule into a draft, filling the
// unused variants' fields with defaults so a later variant switch starts
// from something sensible.
func draftFromRule(r rule.Rule, days []event.Day, locations []string) *Draft {
	d := newDraft(days, locations)
	d.Kind = r.Kind
	d.PriorityRaw = strconv.Itoa(r.Priority)
	if r.Day != "" {
		d.Day = r.Day
	}
	if r.Time != "" {
		d.Time = r.Time
	}
	if r.TimeFrom != "" {
		d.TimeFrom = r.TimeFrom
	}
	if r.TimeTo != "" {
		d.TimeTo = r.TimeTo
	}
	if r.Location != "" {
		d.Location = r.Location
	}
	return d
}

// set applies one field change, keeping the day field coherent with the
// variant: concrete-day variants never hold the wildcard, day-optional
// variants default to it.
func (d *Draft) set(field Field, value string, days []event.Day, locations []string) {
	switch field {
	case FieldKind:
		d.setKind(rule.Kind(value), days)
	case FieldDay:
		d.Day = value
	case FieldTime:
		d.Time = value
	case FieldTimeFrom:
		d.TimeFrom = value
	case FieldTimeTo:
		d.TimeTo = value
	case FieldLocation:
		d.Location = value
		if d.Location == "" && len(locations) > 0 {
			d.Location = locations[0]
		}
	case FieldPriority:
		d.PriorityRaw = value
	}
}

func (d *Draft) setKind(k rule.Kind, days []event.Day) {
	if !k.Valid() {
		return
	}
	d.Kind = k
	switch k {
	case rule.KindDay, rule.KindDayTime:
		if d.Day == "" || d.Day == rule.AllDays {
			if len(days) > 0 {
				d.Day = days[0].Label
			}
		}
		if d.Time == "" {
			d.Time = defaultTime
		}
	case rule.KindTimeRange:
		if d.Day == "" {
			d.Day = rule.AllDays
		}
		if d.TimeFrom == "" {
			d.TimeFrom = defaultTimeFrom
		}
		if d.TimeTo == "" {
			d.TimeTo = defaultTimeTo
		}
	case rule.KindLocation:
		if d.Day == "" {
			d.Day = rule.AllDays
		}
	}
}

// rule materialises the draft as a commit-ready rule with the given id.
func (d *Draft) rule(id int64) rule.Rule {
	return rule.Normalize(rule.Rule{
		ID:       id,
		Kind:     d.Kind,
		Priority: rule.ClampPriority(d.PriorityRaw),
		Day:      d.Day,
		Time:     d.Time,
		TimeFrom: d.TimeFrom,
		TimeTo:   d.TimeTo,
		Location: d.Location,
	})
}

// Rule returns the draft as a rule value for preview filtering. The id is
// zero; the priority is clamped the same way commit would.
func (d *Draft) Rule() rule.Rule {
	return d.rule(0)
}
