package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ireyes/slotprio/internal/config"
	"github.com/ireyes/slotprio/internal/db"
	"github.com/ireyes/slotprio/internal/editor"
	"github.com/ireyes/slotprio/internal/engine"
	"github.com/ireyes/slotprio/internal/event"
	"github.com/ireyes/slotprio/internal/rule"
	"github.com/ireyes/slotprio/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm        // Inline rule form open (creating or editing)
	ModeMove        // Grab-and-move reorder in progress
)

// headerHeight is the number of lines the header occupies. The form card
// renders directly below it, so mouse hit-testing can derive the form's
// bounds without tracking render state.
const headerHeight = 3

// region is a vertical span of rendered lines, used to hit-test mouse
// clicks against the inline form.
type region struct {
	top    int
	height int
}

func (r region) contains(y int) bool {
	return y >= r.top && y < r.top+r.height
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   rule.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Slot catalogue (frozen after startup)
	days      []event.Day
	slots     []event.Slot
	locations []string

	// Rule editing state machine
	ed *editor.Editor

	// State
	mode   Mode
	cursor int // rule index in Normal/Move mode

	// Inline form
	form formState

	// Derived views, recomputed after every mutation
	views   engine.Views
	preview []engine.DayTimeline // draft-filtered timeline; nil when idle

	// Transient feedback
	toast      string
	toastUntil time.Time

	// Terminal dimensions
	width  int
	height int

	// Error state
	err error
}

// New creates a new TUI model over the configured catalogue, seeded with
// previously committed rules.
func New(repo rule.Repository, cfg *config.Config, initial []rule.Rule) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("grip")
	}
	styles := NewStyles(t)

	days := cfg.Days()
	slots := event.Generate(days, cfg.Event.Slots)
	locations := event.Locations(cfg.Event.Slots)

	m := &Model{
		repo:      repo,
		config:    cfg,
		theme:     t,
		styles:    styles,
		days:      days,
		slots:     slots,
		locations: locations,
		ed:        editor.New(days, locations, initial),
		form:      newFormState(styles),
	}
	m.refreshViews()
	return m
}

// refreshViews recomputes the derived views from the committed rules, and
// the draft-filtered preview timeline when a draft is open.
func (m *Model) refreshViews() {
	rules := m.ed.Rules()
	m.views = engine.BuildViews(m.slots, m.days, rules)
	if d := m.ed.Draft(); d != nil {
		m.preview = engine.PreviewTimeline(m.slots, m.days, rules, d.Rule())
	} else {
		m.preview = nil
	}
}

// clampCursor keeps the cursor inside the rule list after mutations.
func (m *Model) clampCursor() {
	if m.cursor >= m.ed.Len() {
		m.cursor = m.ed.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI, opening the rule store when one is configured.
func Run(cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	var repo rule.Repository
	var initial []rule.Rule
	if cfg.Storage.DBPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		store, err := db.New(cfg.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("opening rule store: %w", err)
		}
		defer func() { _ = store.Close() }()
		repo = store

		initial, err = store.LoadRules(context.Background())
		if err != nil {
			return fmt.Errorf("loading rules: %w", err)
		}
	}

	model := New(repo, cfg, initial)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
