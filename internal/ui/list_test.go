package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/ireyes/slotprio/internal/rule"
)

func plainColors(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestDescribeColored(t *testing.T) {
	plainColors(t)

	r := rule.Rule{Kind: rule.KindDay, Priority: 50, Day: "Monday 20 Jan"}
	got := describeColored(r, 80)
	if got != "All slots on Monday 20 Jan → Priority 50" {
		t.Errorf("describeColored = %q", got)
	}
}

func TestDescribeColoredTruncates(t *testing.T) {
	plainColors(t)

	tests := []struct {
		name     string
		maxWidth int
		want     string
	}{
		{
			name:     "cut inside the day value",
			maxWidth: 16,
			want:     "All slots on ...",
		},
		{
			name:     "cut inside the leading text",
			maxWidth: 8,
			want:     "All s...",
		},
	}
	r := rule.Rule{Kind: rule.KindDay, Priority: 50, Day: "Monday 20 Jan"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describeColored(r, tt.maxWidth)
			if got != tt.want {
				t.Errorf("describeColored(%d) = %q, want %q", tt.maxWidth, got, tt.want)
			}
			if len(got) > tt.maxWidth {
				t.Errorf("truncated description is %d bytes, budget %d", len(got), tt.maxWidth)
			}
			if !strings.HasSuffix(got, "...") {
				t.Errorf("truncated description missing ellipsis: %q", got)
			}
		})
	}
}
