package documents

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	documentdto "courtdesk/internal/modules/document/dto"
	"courtdesk/internal/ui/theme"
)

type Port interface {
	ListDocuments(ctx context.Context, caseNumber string) ([]documentdto.DocumentOutput, error)
}

type DocumentsLoadedMsg struct {
	Documents []documentdto.DocumentOutput
	Err       error
}

type ReloadMsg struct{}

type docItem struct {
	d documentdto.DocumentOutput
}

func (i docItem) Title() string { return i.d.Title }
func (i docItem) Description() string {
	return fmt.Sprintf("%s  %s  %s", i.d.Kind, i.d.Status, i.d.CaseNumber)
}
func (i docItem) FilterValue() string { return i.d.Title + " " + i.d.CaseNumber }

type Model struct {
	port     Port
	list     list.Model
	preview  viewport.Model
	renderer *glamour.TermRenderer
	width    int
	height   int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Documents"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	r, _ := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(0))
	return Model{port: port, list: l, preview: viewport.New(0, 0), renderer: r}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listW := m.width * 4 / 10
		m.list.SetSize(listW, m.height)
		m.preview.Width = max(m.width-listW-4, 10)
		m.preview.Height = max(m.height-4, 1)

	case ReloadMsg:
		return m, m.loadCmd()

	case DocumentsLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Documents: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Documents))
		for i, d := range msg.Documents {
			items[i] = docItem{d: d}
		}
		cmds = append(cmds, m.list.SetItems(items))
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	m.preview.SetContent(m.renderDetail())

	var vCmd tea.Cmd
	m.preview, vCmd = m.preview.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 4 / 10
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := theme.Pane.Width(max(m.width-listW-2, 10)).Height(max(m.height-2, 1)).Render(m.preview.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Selected returns the highlighted document.
func (m Model) Selected() (documentdto.DocumentOutput, bool) {
	if item, ok := m.list.SelectedItem().(docItem); ok {
		return item.d, true
	}
	return documentdto.DocumentOutput{}, false
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) renderDetail() string {
	d, ok := m.Selected()
	if !ok {
		return theme.Muted.Render("No documents yet. :doc:new <kind> <title>")
	}
	md := fmt.Sprintf("# %s\n\n*%s* for **%s**, %s, updated %s\n\n---\n\n%s\n", d.Title, d.Kind, d.CaseNumber, d.Status, d.UpdatedAt, d.Content)
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(md); err == nil {
			md = rendered
		}
	}
	hint := ":doc:edit <text>  :doc:finalize  :doc:remove"
	if d.Status == "final" {
		hint = theme.Hot.Render("final, read only") + "  :doc:remove"
	}
	return md + "\n" + theme.Muted.Render(hint)
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		docs, err := m.port.ListDocuments(context.Background(), "")
		return DocumentsLoadedMsg{Documents: docs, Err: err}
	}
}
