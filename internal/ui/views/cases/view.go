package cases

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	casefiledto "courtdesk/internal/modules/casefile/dto"
	"courtdesk/internal/ui/theme"
)

type Port interface {
	ListCases(ctx context.Context, status string) ([]casefiledto.CaseOutput, error)
}

type CasesLoadedMsg struct {
	Cases []casefiledto.CaseOutput
	Err   error
}

type ReloadMsg struct{}

type caseItem struct {
	c casefiledto.CaseOutput
}

func (i caseItem) Title() string { return i.c.CaseNumber + "  " + i.c.Title }
func (i caseItem) Description() string {
	return fmt.Sprintf("%s  %s  %s priority", i.c.Type, i.c.Status, i.c.Priority)
}
func (i caseItem) FilterValue() string { return i.c.CaseNumber + " " + i.c.Title + " " + i.c.Judge }

type Model struct {
	port    Port
	list    list.Model
	preview viewport.Model
	width   int
	height  int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Cases"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l, preview: viewport.New(0, 0)}
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
		listW := m.width / 2
		m.list.SetSize(listW, m.height)
		m.preview.Width = max(m.width-listW-4, 10)
		m.preview.Height = max(m.height-4, 1)

	case ReloadMsg:
		return m, m.loadCmd()

	case CasesLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Cases: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Cases))
		for i, c := range msg.Cases {
			items[i] = caseItem{c: c}
		}
		cmds = append(cmds, m.list.SetItems(items))
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	m.preview.SetContent(m.renderDetail())
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width / 2
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := theme.Pane.Width(max(m.width-listW-2, 10)).Height(max(m.height-2, 1)).Render(m.preview.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Selected returns the highlighted case.
func (m Model) Selected() (casefiledto.CaseOutput, bool) {
	if item, ok := m.list.SelectedItem().(caseItem); ok {
		return item.c, true
	}
	return casefiledto.CaseOutput{}, false
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) renderDetail() string {
	c, ok := m.Selected()
	if !ok {
		return theme.Muted.Render("No case selected")
	}
	hearing := c.NextHearing
	if hearing == "" {
		hearing = "none scheduled"
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(c.Title) + "\n\n")
	sb.WriteString(theme.Muted.Render("number:   ") + c.CaseNumber + "\n")
	sb.WriteString(theme.Muted.Render("type:     ") + c.Type + "\n")
	sb.WriteString(theme.Muted.Render("status:   ") + c.Status + "\n")
	sb.WriteString(theme.Muted.Render("priority: ") + priority(c.Priority) + "\n")
	sb.WriteString(theme.Muted.Render("judge:    ") + c.Judge + "\n")
	sb.WriteString(theme.Muted.Render("hearing:  ") + hearing + "\n")
	sb.WriteString(theme.Muted.Render("opened:   ") + c.CreatedAt + "\n")
	sb.WriteString("\n" + theme.Muted.Render(":case:status <active|pending|closed>  :case:add <number> <type> <title>"))
	return sb.String()
}

func priority(p string) string {
	if p == "high" {
		return theme.Hot.Render(p)
	}
	return p
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		cases, err := m.port.ListCases(context.Background(), "")
		return CasesLoadedMsg{Cases: cases, Err: err}
	}
}
