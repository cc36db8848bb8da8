package rule

import "strconv"

// Segment is one piece of a rule's natural-language description. Value
// segments carry the highlighted values (day, times, location, priority);
// how highlighting renders is up to the caller.
type Segment struct {
	Text  string
	Value bool
}

func text(s string) Segment  { return Segment{Text: s} }
func value(s string) Segment { return Segment{Text: s, Value: true} }

// Describe renders r as a phrase of plain and highlighted segments.
// Unknown variants yield nil.
func Describe(r Rule) []Segment {
	p := value(strconv.Itoa(r.Priority))
	switch r.Kind {
	case KindDay:
		return []Segment{
			text("All slots on "), value(r.Day),
			text(" → Priority "), p,
		}
	case KindDayTime:
		return []Segment{
			text("Slots on "), value(r.Day),
			text(" at "), value(r.Time),
			text(" → Priority "), p,
		}
	case KindTimeRange:
		segs := []Segment{
			text("Slots starting between "), value(r.TimeFrom),
			text(" and "), value(r.TimeTo),
		}
		segs = append(segs, dayScope(r.Day)...)
		return append(segs, text(" → Priority "), p)
	case KindLocation:
		segs := []Segment{text("Slots at "), value(r.Location)}
		segs = append(segs, dayScope(r.Day)...)
		return append(segs, text(" → Priority "), p)
	default:
		return nil
	}
}

func dayScope(day string) []Segment {
	if day == "" || day == AllDays {
		return []Segment{text(" on any day")}
	}
	return []Segment{text(" on "), value(day)}
}

// Plain flattens a description into a single string, for CLI output and
// logs.
func Plain(segs []Segment) string {
	var out string
	for _, s := range segs {
		out += s.Text
	}
	return out
}
