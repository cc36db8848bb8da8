package event

import "testing"

var testDays = []Day{
	{Label: "Monday 20 Jan", Short: "Mon 20 Jan", Date: "2028-01-20"},
	{Label: "Tuesday 21 Jan", Short: "Tue 21 Jan", Date: "2028-01-21"},
}

func TestGenerateSpacing(t *testing.T) {
	cfg := []SlotConfig{
		{Location: "Booth A1", StartHour: 9, StartMinute: 0, Duration: 12, Gap: 3, Count: 3},
	}
	slots := Generate(testDays[:1], cfg)

	if len(slots) != 3 {
		t.Fatalf("Generate returned %d slots, want 3", len(slots))
	}

	want := []struct{ start, end string }{
		{"09:00", "09:12"},
		{"09:15", "09:27"},
		{"09:30", "09:42"},
	}
	for i, w := range want {
		if slots[i].StartTime != w.start || slots[i].EndTime != w.end {
			t.Errorf("slot %d = %s-%s, want %s-%s",
				i, slots[i].StartTime, slots[i].EndTime, w.start, w.end)
		}
		if slots[i].Duration != 12 {
			t.Errorf("slot %d duration = %d, want 12", i, slots[i].Duration)
		}
	}
}

func TestGenerateIDsAndDays(t *testing.T) {
	cfg := []SlotConfig{
		{Location: "Booth A1", StartHour: 9, StartMinute: 0, Duration: 12, Gap: 3, Count: 2},
		{Location: "Table 1", StartHour: 10, StartMinute: 0, Duration: 20, Gap: 5, Count: 1},
	}
	slots := Generate(testDays, cfg)

	if len(slots) != 6 {
		t.Fatalf("Generate returned %d slots, want 6", len(slots))
	}
	for i, s := range slots {
		if s.ID != i {
			t.Errorf("slot %d has ID %d, want %d", i, s.ID, i)
		}
	}
	// Day-major traversal: first three slots on Monday, rest on Tuesday.
	for i := 0; i < 3; i++ {
		if slots[i].Day != "Monday 20 Jan" {
			t.Errorf("slot %d day = %q, want Monday", i, slots[i].Day)
		}
	}
	for i := 3; i < 6; i++ {
		if slots[i].Day != "Tuesday 21 Jan" {
			t.Errorf("slot %d day = %q, want Tuesday", i, slots[i].Day)
		}
	}
	if slots[0].DayShort != "Mon 20 Jan" {
		t.Errorf("slot 0 short day = %q, want Mon 20 Jan", slots[0].DayShort)
	}
}

func TestGenerateStartMinute(t *testing.T) {
	cfg := []SlotConfig{
		{Location: "Booth B1", StartHour: 9, StartMinute: 30, Duration: 15, Gap: 5, Count: 2},
	}
	slots := Generate(testDays[:1], cfg)
	if slots[0].StartTime != "09:30" {
		t.Errorf("first slot starts at %s, want 09:30", slots[0].StartTime)
	}
	if slots[1].StartTime != "09:50" {
		t.Errorf("second slot starts at %s, want 09:50", slots[1].StartTime)
	}
}

func TestSorted(t *testing.T) {
	// Days deliberately ordered so label sort and index sort disagree.
	days := []Day{
		{Label: "Wednesday 22 Jan"},
		{Label: "Monday 20 Jan"},
	}
	slots := []Slot{
		{ID: 0, Day: "Monday 20 Jan", StartTime: "10:00", Location: "B"},
		{ID: 1, Day: "Wednesday 22 Jan", StartTime: "09:00", Location: "A"},
		{ID: 2, Day: "Monday 20 Jan", StartTime: "09:00", Location: "B"},
		{ID: 3, Day: "Monday 20 Jan", StartTime: "09:00", Location: "A"},
	}

	sorted := Sorted(slots, days)
	wantIDs := []int{1, 3, 2, 0}
	for i, want := range wantIDs {
		if sorted[i].ID != want {
			t.Errorf("sorted[%d].ID = %d, want %d", i, sorted[i].ID, want)
		}
	}

	// Input slice untouched.
	if slots[0].ID != 0 {
		t.Error("Sorted mutated its input")
	}
}

func TestLocations(t *testing.T) {
	cfg := []SlotConfig{
		{Location: "Booth A1"},
		{Location: "Table 1"},
		{Location: "Booth A1"},
	}
	locs := Locations(cfg)
	if len(locs) != 2 || locs[0] != "Booth A1" || locs[1] != "Table 1" {
		t.Errorf("Locations = %v, want [Booth A1 Table 1]", locs)
	}
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"23:59", 1439},
		{"bad", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := TimeToMinutes(tt.in); got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{571, "09:31"},
		{-10, "00:00"},
		{24 * 60, "23:59"},
	}
	for _, tt := range tests {
		if got := MinutesToTime(tt.in); got != tt.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"9:00", false},
		{"09-00", false},
		{"09:0a", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidTime(tt.in); got != tt.want {
			t.Errorf("ValidTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
