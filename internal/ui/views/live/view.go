package live

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	livedto "courtdesk/internal/modules/live/dto"
	"courtdesk/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the live session surface this view drives. The caller binds the
// acting role.
type Port interface {
	Arm(ctx context.Context, caseNumber, language string) error
	Start(ctx context.Context) error
	TogglePause(ctx context.Context) (string, error)
	Stop(ctx context.Context) error
	Save(ctx context.Context) (livedto.SaveOutput, error)
	Discard(ctx context.Context) error
	ToggleBookmark(ctx context.Context, entryID string) (livedto.EntryOutput, error)
	SetDisplayLanguage(ctx context.Context, language string) error
	Snapshot(ctx context.Context) (livedto.SnapshotOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SnapshotMsg struct {
	Snap livedto.SnapshotOutput
	Err  error
}

// StatusMsg reports the outcome of a user action for the status bar.
type StatusMsg struct {
	Text string
	Err  error
}

// SavedMsg is emitted after a session has been written to the store.
type SavedMsg struct {
	Out livedto.SaveOutput
	Err error
}

type pollMsg struct{}

const pollInterval = 250 * time.Millisecond

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      Port
	languages []string
	langIdx   int
	caseInput textinput.Model
	entries   viewport.Model
	snap      livedto.SnapshotOutput
	cursor    int
	width     int
	height    int
}

func New(port Port, languages []string) Model {
	ti := textinput.New()
	ti.Placeholder = "case number, e.g. 2025-CR-001"
	ti.CharLimit = 64
	if len(languages) == 0 {
		languages = []string{"en"}
	}
	return Model{port: port, languages: languages, caseInput: ti, entries: viewport.New(0, 0)}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.snapshotCmd(), pollCmd())
}

// Editing reports whether the case number input has focus.
func (m Model) Editing() bool {
	return m.caseInput.Focused()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.entries.Width = m.width - 4
		m.entries.Height = max(m.height-9, 3)
		m.entries.SetContent(m.renderEntries())

	case pollMsg:
		return m, tea.Batch(m.snapshotCmd(), pollCmd())

	case SnapshotMsg:
		if msg.Err == nil {
			follow := m.cursor >= len(m.snap.Entries)-1
			m.snap = msg.Snap
			if follow || m.cursor >= len(m.snap.Entries) {
				m.cursor = len(m.snap.Entries) - 1
			}
			m.entries.SetContent(m.renderEntries())
			if follow {
				m.entries.GotoBottom()
			}
		}

	case tea.KeyMsg:
		if m.caseInput.Focused() {
			switch msg.String() {
			case "esc":
				m.caseInput.Blur()
				return m, nil
			case "enter":
				m.caseInput.Blur()
				return m, m.armCmd(strings.TrimSpace(m.caseInput.Value()), m.languages[m.langIdx])
			}
			var cmd tea.Cmd
			m.caseInput, cmd = m.caseInput.Update(msg)
			return m, cmd
		}
		cmds = append(cmds, m.handleKey(msg.String()))
	}

	var vCmd tea.Cmd
	m.entries, vCmd = m.entries.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch m.snap.State {
	case "idle", "":
		switch key {
		case "a", "enter":
			return m.caseInput.Focus()
		case "l":
			m.langIdx = (m.langIdx + 1) % len(m.languages)
		}
	case "armed":
		switch key {
		case "a":
			m.caseInput.SetValue(m.snap.CaseNumber)
			return m.caseInput.Focus()
		case "l":
			m.langIdx = (m.langIdx + 1) % len(m.languages)
			return m.armCmd(m.snap.CaseNumber, m.languages[m.langIdx])
		case "r", "enter":
			return m.actionCmd("recording started", func(ctx context.Context) error { return m.port.Start(ctx) })
		case "d":
			return m.actionCmd("session discarded", func(ctx context.Context) error { return m.port.Discard(ctx) })
		}
	case "recording", "paused", "stopped":
		switch key {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.entries.SetContent(m.renderEntries())
			}
		case "down", "j":
			if m.cursor < len(m.snap.Entries)-1 {
				m.cursor++
				m.entries.SetContent(m.renderEntries())
			}
		case "b":
			if m.cursor >= 0 && m.cursor < len(m.snap.Entries) {
				entryID := m.snap.Entries[m.cursor].ID
				return m.actionCmd("bookmark toggled", func(ctx context.Context) error {
					_, err := m.port.ToggleBookmark(ctx, entryID)
					return err
				})
			}
		case "v":
			next := m.nextDisplayLanguage()
			return m.actionCmd("display language: "+next, func(ctx context.Context) error { return m.port.SetDisplayLanguage(ctx, next) })
		}
		if m.snap.State == "stopped" {
			switch key {
			case "w":
				return m.saveCmd()
			case "d":
				return m.actionCmd("session discarded", func(ctx context.Context) error { return m.port.Discard(ctx) })
			}
			return nil
		}
		switch key {
		case " ", "p":
			return func() tea.Msg {
				state, err := m.port.TogglePause(context.Background())
				return StatusMsg{Text: "session " + state, Err: err}
			}
		case "x":
			return m.actionCmd("recording stopped", func(ctx context.Context) error { return m.port.Stop(ctx) })
		}
	}
	return nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderHeader() + "\n\n")
	switch m.snap.State {
	case "idle", "":
		sb.WriteString(theme.Title.Render("Arm a session") + "\n\n")
		sb.WriteString(theme.Muted.Render("case:     ") + m.caseInput.View() + "\n")
		sb.WriteString(theme.Muted.Render("language: ") + m.languages[m.langIdx] + "\n\n")
		sb.WriteString(theme.Muted.Render("a/enter: edit case number  l: cycle language"))
		return theme.Pane.Width(max(m.width-2, 20)).Render(sb.String())
	case "armed":
		if m.caseInput.Focused() {
			sb.WriteString(theme.Muted.Render("case: ") + m.caseInput.View() + "\n\n")
		}
		sb.WriteString(theme.Muted.Render("r/enter: start recording  l: change language  a: change case  d: discard"))
		return theme.Pane.Width(max(m.width-2, 20)).Render(sb.String())
	}
	sb.WriteString(m.entries.View() + "\n")
	help := "space: pause/resume  x: stop  b: bookmark  v: display language  ↑/↓: select"
	if m.snap.State == "stopped" {
		help = "w: save  d: discard  b: bookmark  v: display language  ↑/↓: select"
	}
	sb.WriteString(theme.Muted.Render(help))
	return theme.Pane.Width(max(m.width-2, 20)).Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderHeader() string {
	s := m.snap
	badge := stateBadge(s.State)
	if s.State == "idle" || s.State == "" {
		return badge
	}
	line := fmt.Sprintf("%s  %s  %s  %s",
		badge,
		theme.Title.Render(s.CaseNumber),
		theme.Muted.Render("capture ")+s.Language+theme.Muted.Render(" / display ")+s.DisplayLanguage,
		theme.Hot.Render(s.Elapsed),
	)
	if s.CurrentSpeaker != "" {
		line += fmt.Sprintf("\n%s %s (%d%%)  %s %d", theme.Muted.Render("speaking:"), s.CurrentSpeaker, s.Confidence, theme.Muted.Render("queued:"), s.Remaining)
	}
	return line
}

func stateBadge(state string) string {
	switch state {
	case "recording":
		return theme.Recording.Render("● REC")
	case "paused":
		return theme.Hot.Render("❚❚ PAUSED")
	case "stopped":
		return theme.Muted.Render("■ STOPPED")
	case "saving":
		return theme.Muted.Render("↧ SAVING")
	case "armed":
		return theme.Title.Render("◎ ARMED")
	}
	return theme.Muted.Render("○ IDLE")
}

func (m Model) renderEntries() string {
	if len(m.snap.Entries) == 0 {
		return theme.Muted.Render("waiting for the first utterance…")
	}
	var sb strings.Builder
	for i, e := range m.snap.Entries {
		mark := "  "
		if e.IsBookmarked {
			mark = theme.Hot.Render("★ ")
		}
		line := fmt.Sprintf("%s%s %s %s", mark, theme.Muted.Render(e.Timestamp), theme.Title.Render(e.Speaker+":"), e.Text)
		if i == m.cursor {
			line = lipgloss.NewStyle().Background(theme.Surface0).Render(line)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m Model) nextDisplayLanguage() string {
	current := m.snap.DisplayLanguage
	for i, l := range m.languages {
		if l == current {
			return m.languages[(i+1)%len(m.languages)]
		}
	}
	return m.languages[0]
}

func (m Model) snapshotCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.port.Snapshot(context.Background())
		return SnapshotMsg{Snap: snap, Err: err}
	}
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}

func (m Model) armCmd(caseNumber, language string) tea.Cmd {
	return m.actionCmd("armed "+caseNumber+" ["+language+"]", func(ctx context.Context) error {
		return m.port.Arm(ctx, caseNumber, language)
	})
}

func (m Model) actionCmd(okText string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: okText, Err: fn(context.Background())}
	}
}

func (m Model) saveCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Save(context.Background())
		return SavedMsg{Out: out, Err: err}
	}
}
