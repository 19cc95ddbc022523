package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	transcriptdto "courtdesk/internal/modules/transcript/dto"
	"courtdesk/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	ListRecords(ctx context.Context, caseNumber string) ([]transcriptdto.RecordOutput, error)
	GetRecord(ctx context.Context, id, language, search string) (transcriptdto.RecordDetailOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type RecordsLoadedMsg struct {
	Records []transcriptdto.RecordOutput
	Err     error
}

type DetailLoadedMsg struct {
	Detail transcriptdto.RecordDetailOutput
	Err    error
}

// ReloadMsg asks the view to refetch the list, e.g. after a live save.
type ReloadMsg struct{}

// ─── list item ───────────────────────────────────────────────────────────────

type recordItem struct {
	record transcriptdto.RecordOutput
}

func (i recordItem) Title() string { return i.record.CaseNumber + "  " + i.record.CaseTitle }
func (i recordItem) Description() string {
	return fmt.Sprintf("%s  %s  %s  %d entries", i.record.Date, i.record.Duration, i.record.Language, i.record.EntryCount)
}
func (i recordItem) FilterValue() string { return i.record.CaseNumber + " " + i.record.CaseTitle }

// ─── model ───────────────────────────────────────────────────────────────────

// Model lists saved transcriptions and renders the selected one as markdown
// in a chosen display language.
type Model struct {
	port      Port
	list      list.Model
	preview   viewport.Model
	renderer  *glamour.TermRenderer
	detail    transcriptdto.RecordDetailOutput
	languages []string
	display   string
	search    string
	width     int
	height    int
}

func New(port Port, languages []string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Records"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	r, _ := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(0))

	return Model{port: port, list: l, preview: viewport.New(0, 0), renderer: r, languages: languages}
}

func (m Model) Init() tea.Cmd {
	return m.loadRecordsCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ReloadMsg:
		return m, m.loadRecordsCmd()

	case RecordsLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Records: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Records))
		for i, r := range msg.Records {
			items[i] = recordItem{record: r}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Records) > 0 {
			idx := min(m.list.Index(), len(msg.Records)-1)
			cmds = append(cmds, m.loadDetailCmd(msg.Records[idx].ID))
		} else {
			m.detail = transcriptdto.RecordDetailOutput{}
			m.preview.SetContent(m.renderDetail())
		}

	case DetailLoadedMsg:
		if msg.Err != nil {
			m.preview.SetContent(theme.Hot.Render("Error: " + msg.Err.Error()))
		} else {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
			m.preview.GotoTop()
		}

	case tea.KeyMsg:
		if !m.Filtering() && msg.String() == "l" {
			m.display = m.nextLanguage()
			if id, ok := m.SelectedRecordID(); ok {
				return m, m.loadDetailCmd(id)
			}
			return m, nil
		}
	}

	prevIdx := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		if id, ok := m.SelectedRecordID(); ok {
			cmds = append(cmds, m.loadDetailCmd(id))
		}
	}

	var vCmd tea.Cmd
	m.preview, vCmd = m.preview.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := theme.Pane.
		Width(max(detailW-2, 10)).
		Height(max(m.height-2, 1)).
		Render(m.preview.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedRecordID returns the highlighted record's id.
func (m Model) SelectedRecordID() (string, bool) {
	if item, ok := m.list.SelectedItem().(recordItem); ok {
		return item.record.ID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SetSearch narrows the detail transcript to entries matching query.
func (m *Model) SetSearch(query string) tea.Cmd {
	m.search = query
	if id, ok := m.SelectedRecordID(); ok {
		return m.loadDetailCmd(id)
	}
	return nil
}

// SetDisplayLanguage re-renders the selected record in language.
func (m *Model) SetDisplayLanguage(language string) tea.Cmd {
	m.display = language
	if id, ok := m.SelectedRecordID(); ok {
		return m.loadDetailCmd(id)
	}
	return nil
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = max(detailW-4, 10)
	m.preview.Height = max(m.height-4, 1)
	if m.renderer != nil {
		if r, err := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(m.preview.Width-2)); err == nil {
			m.renderer = r
		}
	}
	m.preview.SetContent(m.renderDetail())
}

func (m Model) nextLanguage() string {
	if len(m.languages) == 0 {
		return ""
	}
	current := m.display
	if current == "" {
		current = m.detail.Language
	}
	for i, l := range m.languages {
		if l == current {
			return m.languages[(i+1)%len(m.languages)]
		}
	}
	return m.languages[0]
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("No transcription selected")
	}
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", d.CaseTitle)
	fmt.Fprintf(&md, "| case | date | duration | clerk | status | size |\n|---|---|---|---|---|---|\n")
	fmt.Fprintf(&md, "| %s | %s | %s | %s | %s | %s |\n\n", d.CaseNumber, d.Date, d.Duration, d.ClerkName, d.Status, d.FileSize)
	fmt.Fprintf(&md, "Captured in **%s**, shown in **%s**", d.Language, d.DisplayLanguage)
	if m.search != "" {
		fmt.Fprintf(&md, ", filtered by *%s*", m.search)
	}
	md.WriteString(".\n\n")
	for _, e := range d.Entries {
		star := ""
		if e.IsBookmarked {
			star = " ★"
		}
		fmt.Fprintf(&md, "- `%s` **%s** (%d%%)%s: %s _#%s_\n", e.Timestamp, e.Speaker, e.Confidence, star, e.Text, e.ID)
	}
	if len(d.Entries) == 0 {
		md.WriteString("*no matching entries*\n")
	}
	out := md.String()
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(out); err == nil {
			out = rendered
		}
	}
	return out + "\n" + theme.Muted.Render("l: display language  /: filter list  :record:find <text>")
}

func (m Model) loadRecordsCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := m.port.ListRecords(context.Background(), "")
		return RecordsLoadedMsg{Records: records, Err: err}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	display, search := m.display, m.search
	return func() tea.Msg {
		detail, err := m.port.GetRecord(context.Background(), id, display, search)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}
