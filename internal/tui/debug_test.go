package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDebugLogRecordsModesAndRules(t *testing.T) {
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	if err := InitDebugLogger(true); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = InitDebugLogger(false) })

	m := newTestModel(t, testRules()...)
	// Open the form, commit the default rule, then remove one.
	m = apply(t, m,
		keyRune('a'),
		tea.KeyMsg{Type: tea.KeyEnter},
		keyRune('x'),
	)
	if m.ed.Len() != 3 {
		t.Fatalf("rules = %d after add+remove, want 3", m.ed.Len())
	}

	CloseDebugLogger()
	data, err := os.ReadFile(DebugLogPath)
	if err != nil {
		t.Fatal(err)
	}
	log := string(data)
	for _, want := range []string{
		`"MODE_CHANGE"`,
		`"from":"Normal"`,
		`"to":"Form"`,
		`"RULES"`,
		`"action":"add"`,
		`"action":"remove"`,
	} {
		if !strings.Contains(log, want) {
			t.Errorf("debug log missing %s", want)
		}
	}
}
