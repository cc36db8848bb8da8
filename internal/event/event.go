// Package event defines the core domain types for slotprio: event days,
// meeting slots, and the catalogue generator.
package event

import "sort"

// Day is one day of the event.
type Day struct {
	Label string // e.g. "Monday 20 Jan"
	Short string // e.g. "Mon 20 Jan"
	Date  string // ISO date, e.g. "2028-01-20"
}

// Slot is a reserved meeting window at a named location. Slots are
// generated once at startup and never mutated afterwards.
type Slot struct {
	ID        int
	Day       string // day label
	DayShort  string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	Location  string
	Duration  int // minutes
}

// SlotConfig describes how slots are generated for one location:
// Count slots of Duration minutes, Gap minutes apart, starting at
// StartHour:StartMinute.
type SlotConfig struct {
	Location    string `toml:"location"`
	StartHour   int    `toml:"start_hour"`
	StartMinute int    `toml:"start_minute"`
	Duration    int    `toml:"duration"`
	Gap         int    `toml:"gap"`
	Count       int    `toml:"count"`
}

// Generate produces the slot catalogue for the given days and location
// configs. The i-th slot of a config starts i*(duration+gap) minutes after
// the config's start time. IDs are assigned in traversal order (day-major,
// config order inner). Consumers must not depend on this ordering; use
// Sorted for display order.
func Generate(days []Day, configs []SlotConfig) []Slot {
	var slots []Slot
	for _, day := range days {
		for _, cfg := range configs {
			for i := 0; i < cfg.Count; i++ {
				start := cfg.StartHour*60 + cfg.StartMinute + i*(cfg.Duration+cfg.Gap)
				slots = append(slots, Slot{
					ID:        len(slots),
					Day:       day.Label,
					DayShort:  day.Short,
					StartTime: MinutesToTime(start),
					EndTime:   MinutesToTime(start + cfg.Duration),
					Location:  cfg.Location,
					Duration:  cfg.Duration,
				})
			}
		}
	}
	return slots
}

// Sorted returns a copy of slots in canonical display order:
// (day, start time, location). Day order follows the days list, not the
// label's lexicographic order.
func Sorted(slots []Slot, days []Day) []Slot {
	dayIdx := make(map[string]int, len(days))
	for i, d := range days {
		dayIdx[d.Label] = i
	}
	sorted := make([]Slot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Day != b.Day {
			return dayIdx[a.Day] < dayIdx[b.Day]
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.Location < b.Location
	})
	return sorted
}

// Locations returns the distinct locations in config order.
func Locations(configs []SlotConfig) []string {
	seen := make(map[string]bool, len(configs))
	var locs []string
	for _, cfg := range configs {
		if !seen[cfg.Location] {
			seen[cfg.Location] = true
			locs = append(locs, cfg.Location)
		}
	}
	return locs
}
