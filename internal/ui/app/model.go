package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	casefiledto "courtdesk/internal/modules/casefile/dto"
	documentdto "courtdesk/internal/modules/document/dto"
	livedto "courtdesk/internal/modules/live/dto"
	transcriptdto "courtdesk/internal/modules/transcript/dto"
	"courtdesk/internal/platform/role"
	"courtdesk/internal/ui/components"
	"courtdesk/internal/ui/theme"
	casesview "courtdesk/internal/ui/views/cases"
	documentsview "courtdesk/internal/ui/views/documents"
	liveview "courtdesk/internal/ui/views/live"
	recordsview "courtdesk/internal/ui/views/records"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type TranscriptPort interface {
	ListRecords(ctx context.Context, caseNumber string) ([]transcriptdto.RecordOutput, error)
	GetRecord(ctx context.Context, id, language, search string) (transcriptdto.RecordDetailOutput, error)
	RemoveRecord(ctx context.Context, id string) (bool, error)
	ToggleBookmark(ctx context.Context, recordID, entryID string) (transcriptdto.EntryOutput, error)
	Export(ctx context.Context, id string) (string, error)
}

type CasePort interface {
	ListCases(ctx context.Context, status string) ([]casefiledto.CaseOutput, error)
	CreateCase(ctx context.Context, caseNumber, title, caseType, judge, nextHearing, priority string) (casefiledto.CaseOutput, error)
	UpdateStatus(ctx context.Context, caseNumber, status string) (casefiledto.CaseOutput, error)
	RemoveCase(ctx context.Context, caseNumber string) (bool, error)
}

type DocumentPort interface {
	ListDocuments(ctx context.Context, caseNumber string) ([]documentdto.DocumentOutput, error)
	SaveDocument(ctx context.Context, id, title, caseNumber, kind, content string) (documentdto.DocumentOutput, error)
	FinalizeDocument(ctx context.Context, actor role.Role, id string) (documentdto.DocumentOutput, error)
	RemoveDocument(ctx context.Context, id string) (bool, error)
}

type LivePort interface {
	Arm(ctx context.Context, actor role.Role, caseNumber, language string) error
	Start(ctx context.Context) error
	TogglePause(ctx context.Context) (string, error)
	Stop(ctx context.Context) error
	Save(ctx context.Context) (livedto.SaveOutput, error)
	Discard(ctx context.Context) error
	ToggleBookmark(ctx context.Context, entryID string) (livedto.EntryOutput, error)
	SetDisplayLanguage(ctx context.Context, language string) error
	Snapshot(ctx context.Context) (livedto.SnapshotOutput, error)
}

// ─── tabs ────────────────────────────────────────────────────────────────────

type tabID int

const (
	tabLive tabID = iota
	tabRecords
	tabCases
	tabDocuments
)

func (t tabID) label() string {
	switch t {
	case tabLive:
		return "Live"
	case tabRecords:
		return "Records"
	case tabCases:
		return "Cases"
	case tabDocuments:
		return "Documents"
	}
	return "?"
}

func tabsFor(r role.Role) []tabID {
	switch r {
	case role.Judge:
		return []tabID{tabCases, tabRecords, tabDocuments}
	case role.Clerk:
		return []tabID{tabLive, tabRecords, tabCases}
	}
	return nil
}

func paletteHintsFor(r role.Role) []string {
	common := []string{
		"record:find <text>",
		"record:lang <code>",
		"record:bookmark <entry-id>",
		"record:export",
		"case:status <active|pending|closed>",
	}
	switch r {
	case role.Judge:
		return append(common,
			"doc:new <order|judgment|motion|notice> <title>",
			"doc:edit <text>",
			"doc:finalize",
			"doc:remove",
		)
	case role.Clerk:
		return append(common,
			"live:arm <case-number> <lang>",
			"case:add <number> <type> <title>",
			"case:remove",
			"record:remove",
		)
	}
	return common
}

// ─── messages ────────────────────────────────────────────────────────────────

// opDoneMsg reports a palette action and names the tab to refresh.
type opDoneMsg struct {
	text   string
	err    error
	reload tabID
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Live    key.Binding
	Lang    key.Binding
}

func defaultKeys(r role.Role) keyMap {
	k := keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Lang:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "cycle language")),
		Live:    key.NewBinding(key.WithKeys(" ", "x", "w", "b"), key.WithHelp("space/x/w/b", "pause/stop/save/bookmark")),
	}
	k.Live.SetEnabled(r.CanRecord())
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Lang, k.Live},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. Tabs and palette commands are chosen
// by role once at construction.
type Model struct {
	role      role.Role
	tabs      []tabID
	active    int
	records   TranscriptPort
	cases     CasePort
	documents DocumentPort
	live      liveview.Port

	liveView liveview.Model
	recView  recordsview.Model
	caseView casesview.Model
	docView  documentsview.Model
	hasLive  bool
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(r role.Role, languages []string, records TranscriptPort, cases CasePort, documents DocumentPort, live LivePort) Model {
	m := Model{
		role:      r,
		tabs:      tabsFor(r),
		records:   records,
		cases:     cases,
		documents: documents,
		recView:   recordsview.New(records, languages),
		caseView:  casesview.New(cases),
		docView:   documentsview.New(documents),
		keys:      defaultKeys(r),
		help:      help.New(),
		palette:   components.NewPalette(paletteHintsFor(r)),
		status:    "ready",
	}
	if r.CanRecord() && live != nil {
		m.live = liveBridge{p: live, actor: r}
		m.liveView = liveview.New(m.live, languages)
		m.hasLive = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.recView.Init(), m.caseView.Init()}
	if m.hasTab(tabDocuments) {
		cmds = append(cmds, m.docView.Init())
	}
	if m.hasLive {
		cmds = append(cmds, m.liveView.Init())
	}
	return tea.Batch(cmds...)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.status = "error: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.text
		return m, m.reload(msg.reload)

	case liveview.StatusMsg:
		if msg.Err != nil {
			m.status = "live: " + msg.Err.Error()
		} else {
			m.status = msg.Text
		}

	case liveview.SavedMsg:
		if msg.Err != nil {
			m.status = "save failed: " + msg.Err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("saved %s (%d entries, %s)", msg.Out.CaseNumber, msg.Out.Entries, msg.Out.FileSize)
		return m, m.reload(tabRecords)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.subViewCapturing() {
			return m, m.updateTab(m.currentTab(), msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.active = (m.active + 1) % len(m.tabs)
			return m, nil
		case "shift+tab":
			m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
			return m, nil
		case "?":
			m.showHelp = true
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
		// Keys go only to the active tab.
		return m, m.updateTab(m.currentTab(), msg)
	}

	// Async results fan out to every view; each ignores what is not its own.
	var cmd tea.Cmd
	if m.hasLive {
		m.liveView, cmd = m.liveView.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.recView, cmd = m.recView.Update(msg)
	cmds = append(cmds, cmd)
	m.caseView, cmd = m.caseView.Update(msg)
	cmds = append(cmds, cmd)
	m.docView, cmd = m.docView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) updateTab(tab tabID, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch tab {
	case tabLive:
		m.liveView, cmd = m.liveView.Update(msg)
	case tabRecords:
		m.recView, cmd = m.recView.Update(msg)
	case tabCases:
		m.caseView, cmd = m.caseView.Update(msg)
	case tabDocuments:
		m.docView, cmd = m.docView.Update(msg)
	}
	return cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		switch m.currentTab() {
		case tabLive:
			content = m.liveView.View()
		case tabRecords:
			content = m.recView.View()
		case tabCases:
			content = m.caseView.View()
		case tabDocuments:
			content = m.docView.View()
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			parts[i] = theme.Hot.Render(" " + t.label() + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + t.label() + " ")
		}
	}
	bar := "courtdesk " + theme.RoleBadge(m.role.Title(), m.role == role.Judge) + "  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	rest := func(n int) string {
		fields := parts[n:]
		return strings.Join(fields, " ")
	}
	if !m.allowed(parts[0]) {
		m.status = fmt.Sprintf("%s is not available to the %s", parts[0], m.role)
		return m, nil
	}

	switch parts[0] {
	case "record:find":
		m.focus(tabRecords)
		return m, m.recView.SetSearch(rest(1))

	case "record:lang":
		if len(parts) < 2 {
			m.status = "usage: record:lang <code>"
			return m, nil
		}
		m.focus(tabRecords)
		return m, m.recView.SetDisplayLanguage(parts[1])

	case "record:bookmark":
		id, ok := m.recView.SelectedRecordID()
		if !ok || len(parts) < 2 {
			m.status = "usage: select a record, then record:bookmark <entry-id>"
			return m, nil
		}
		entryID := parts[1]
		return m, m.op(tabRecords, func(ctx context.Context) (string, error) {
			e, err := m.records.ToggleBookmark(ctx, id, entryID)
			return fmt.Sprintf("bookmark %s: %t", e.ID, e.IsBookmarked), err
		})

	case "record:export":
		id, ok := m.recView.SelectedRecordID()
		if !ok {
			m.status = "no record selected"
			return m, nil
		}
		return m, m.op(tabRecords, func(ctx context.Context) (string, error) {
			path, err := m.records.Export(ctx, id)
			return "exported to " + path, err
		})

	case "record:remove":
		id, ok := m.recView.SelectedRecordID()
		if !ok {
			m.status = "no record selected"
			return m, nil
		}
		return m, m.op(tabRecords, func(ctx context.Context) (string, error) {
			removed, err := m.records.RemoveRecord(ctx, id)
			if err == nil && !removed {
				return "record is not stored locally", nil
			}
			return "record removed", err
		})

	case "case:status":
		c, ok := m.caseView.Selected()
		if !ok || len(parts) < 2 {
			m.status = "usage: select a case, then case:status <active|pending|closed>"
			return m, nil
		}
		status := parts[1]
		return m, m.op(tabCases, func(ctx context.Context) (string, error) {
			out, err := m.cases.UpdateStatus(ctx, c.CaseNumber, status)
			return out.CaseNumber + " is now " + out.Status, err
		})

	case "case:add":
		if len(parts) < 4 {
			m.status = "usage: case:add <number> <type> <title>"
			return m, nil
		}
		number, caseType, title := parts[1], parts[2], rest(3)
		return m, m.op(tabCases, func(ctx context.Context) (string, error) {
			out, err := m.cases.CreateCase(ctx, number, title, caseType, "", "", "")
			return "case " + out.CaseNumber + " opened", err
		})

	case "case:remove":
		c, ok := m.caseView.Selected()
		if !ok {
			m.status = "no case selected"
			return m, nil
		}
		return m, m.op(tabCases, func(ctx context.Context) (string, error) {
			_, err := m.cases.RemoveCase(ctx, c.CaseNumber)
			return "case " + c.CaseNumber + " removed", err
		})

	case "doc:new":
		if len(parts) < 3 {
			m.status = "usage: doc:new <kind> <title>"
			return m, nil
		}
		kind, title := parts[1], rest(2)
		caseNumber := ""
		if c, ok := m.caseView.Selected(); ok {
			caseNumber = c.CaseNumber
		}
		m.focus(tabDocuments)
		return m, m.op(tabDocuments, func(ctx context.Context) (string, error) {
			out, err := m.documents.SaveDocument(ctx, "", title, caseNumber, kind, "")
			return "drafted " + out.Title, err
		})

	case "doc:edit":
		d, ok := m.docView.Selected()
		if !ok || len(parts) < 2 {
			m.status = "usage: select a document, then doc:edit <text>"
			return m, nil
		}
		content := rest(1)
		return m, m.op(tabDocuments, func(ctx context.Context) (string, error) {
			_, err := m.documents.SaveDocument(ctx, d.ID, "", "", "", content)
			return "saved " + d.Title, err
		})

	case "doc:finalize":
		d, ok := m.docView.Selected()
		if !ok {
			m.status = "no document selected"
			return m, nil
		}
		actor := m.role
		return m, m.op(tabDocuments, func(ctx context.Context) (string, error) {
			_, err := m.documents.FinalizeDocument(ctx, actor, d.ID)
			return "finalized " + d.Title, err
		})

	case "doc:remove":
		d, ok := m.docView.Selected()
		if !ok {
			m.status = "no document selected"
			return m, nil
		}
		return m, m.op(tabDocuments, func(ctx context.Context) (string, error) {
			_, err := m.documents.RemoveDocument(ctx, d.ID)
			return "removed " + d.Title, err
		})

	case "live:arm":
		if len(parts) < 3 {
			m.status = "usage: live:arm <case-number> <lang>"
			return m, nil
		}
		m.focus(tabLive)
		caseNumber, lang := parts[1], parts[2]
		return m, m.op(tabLive, func(ctx context.Context) (string, error) {
			return "armed " + caseNumber, m.live.Arm(ctx, caseNumber, lang)
		})
	}
	m.status = "unknown command: " + parts[0]
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) allowed(command string) bool {
	for _, h := range paletteHintsFor(m.role) {
		if strings.HasPrefix(h, command+" ") || h == command {
			return true
		}
	}
	return false
}

func (m Model) currentTab() tabID {
	if len(m.tabs) == 0 {
		return tabRecords
	}
	return m.tabs[m.active]
}

func (m Model) hasTab(t tabID) bool {
	for _, x := range m.tabs {
		if x == t {
			return true
		}
	}
	return false
}

func (m *Model) focus(t tabID) {
	for i, x := range m.tabs {
		if x == t {
			m.active = i
			return
		}
	}
}

// subViewCapturing reports whether the active tab is taking free text,
// in which case global keys must yield.
func (m Model) subViewCapturing() bool {
	switch m.currentTab() {
	case tabLive:
		return m.hasLive && m.liveView.Editing()
	case tabRecords:
		return m.recView.Filtering()
	case tabCases:
		return m.caseView.Filtering()
	case tabDocuments:
		return m.docView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 4}
	if m.hasLive {
		m.liveView, _ = m.liveView.Update(sz)
	}
	m.recView, _ = m.recView.Update(sz)
	m.caseView, _ = m.caseView.Update(sz)
	m.docView, _ = m.docView.Update(sz)
}

func (m Model) reload(t tabID) tea.Cmd {
	switch t {
	case tabRecords:
		return func() tea.Msg { return recordsview.ReloadMsg{} }
	case tabCases:
		return func() tea.Msg { return casesview.ReloadMsg{} }
	case tabDocuments:
		return func() tea.Msg { return documentsview.ReloadMsg{} }
	}
	return nil
}

func (m Model) op(reload tabID, fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		text, err := fn(context.Background())
		return opDoneMsg{text: text, err: err, reload: reload}
	}
}

// ─── port bridges ────────────────────────────────────────────────────────────

// liveBridge binds the acting role so the live view never handles it.
type liveBridge struct {
	p     LivePort
	actor role.Role
}

func (b liveBridge) Arm(ctx context.Context, caseNumber, language string) error {
	return b.p.Arm(ctx, b.actor, caseNumber, language)
}

func (b liveBridge) Start(ctx context.Context) error {
	return b.p.Start(ctx)
}

func (b liveBridge) TogglePause(ctx context.Context) (string, error) {
	return b.p.TogglePause(ctx)
}

func (b liveBridge) Stop(ctx context.Context) error {
	return b.p.Stop(ctx)
}

func (b liveBridge) Save(ctx context.Context) (livedto.SaveOutput, error) {
	return b.p.Save(ctx)
}

func (b liveBridge) Discard(ctx context.Context) error {
	return b.p.Discard(ctx)
}

func (b liveBridge) ToggleBookmark(ctx context.Context, entryID string) (livedto.EntryOutput, error) {
	return b.p.ToggleBookmark(ctx, entryID)
}

func (b liveBridge) SetDisplayLanguage(ctx context.Context, language string) error {
	return b.p.SetDisplayLanguage(ctx, language)
}

func (b liveBridge) Snapshot(ctx context.Context) (livedto.SnapshotOutput, error) {
	return b.p.Snapshot(ctx)
}
