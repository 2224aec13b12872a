// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookshelf/internal/catalog"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// SelectionAction represents the user's action in the selection UI.
type SelectionAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone SelectionAction = iota
	// ActionSelected indicates the user picked a record.
	ActionSelected
	// ActionDelete indicates the user asked to delete the highlighted record.
	ActionDelete
	// ActionQuit indicates the user left without choosing.
	ActionQuit
)

// SelectionResult holds the result of a TUI selection.
type SelectionResult struct {
	Action    SelectionAction
	Selection *catalog.Book
}

type bookItem struct {
	catalog.Book
}

func (i bookItem) Title() string {
	return fmt.Sprintf("%s (%d)", i.Book.Title, i.Year)
}

func (i bookItem) FilterValue() string {
	return i.Book.Title
}

func (i bookItem) Description() string {
	return i.Author
}

type itemStyles struct {
	normal     lipgloss.Style
	selected   lipgloss.Style
	idStyle    lipgloss.Style
	titleStyle lipgloss.Style
	metaStyle  lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		idStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		metaStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
	}
}

type bookDelegate struct {
	styles itemStyles
}

func newDelegate() bookDelegate {
	return bookDelegate{styles: newItemStyles()}
}

func (d bookDelegate) Height() int                         { return 3 }
func (d bookDelegate) Spacing() int                        { return 1 }
func (d bookDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d bookDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	book, ok := item.(bookItem)
	if !ok {
		return
	}

	idLine := d.styles.idStyle.Render(fmt.Sprintf("[#%s]", book.ID))
	titleLine := d.styles.titleStyle.Render(truncate(book.Title(), m.Width()-4))
	metaLine := d.styles.metaStyle.Render(formatMetadata(book.Book, m.Width()-4))

	content := lipgloss.JoinVertical(lipgloss.Left, idLine, titleLine, metaLine)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

type model struct {
	list    list.Model
	heading string
	result  SelectionResult
}

func newModel(heading string, books []catalog.Book) *model {
	listItems := make([]list.Item, len(books))
	for i, book := range books {
		listItems[i] = bookItem{Book: book}
	}

	l := list.New(listItems, newDelegate(), defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &model{
		list:    l,
		heading: heading,
		result:  SelectionResult{Action: ActionNone},
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if book, ok := m.selected(); ok {
				m.result = SelectionResult{Action: ActionSelected, Selection: book}
				return m, tea.Quit
			}
		case "d":
			if book, ok := m.selected(); ok {
				m.result = SelectionResult{Action: ActionDelete, Selection: book}
				return m, tea.Quit
			}
		case "ctrl+c", "q", "esc":
			m.result = SelectionResult{Action: ActionQuit}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) selected() (*catalog.Book, bool) {
	item, ok := m.list.SelectedItem().(bookItem)
	if !ok {
		return nil, false
	}
	book := item.Book
	return &book, true
}

func (m *model) View() string {
	header := headerStyle.Render(fmt.Sprintf("%s (%d books)", m.heading, len(m.list.Items())))
	help := helpStyle.Render("Up/Down navigate | Enter select | d delete | q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), help)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// Select presents an interactive picker over books. An empty list returns
// ActionQuit without starting the program.
func Select(heading string, books []catalog.Book) (SelectionResult, error) {
	if len(books) == 0 {
		return SelectionResult{Action: ActionQuit}, nil
	}

	finalModel, err := runProgram(newModel(heading, books))
	if err != nil {
		return SelectionResult{}, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.result, nil
	}

	return SelectionResult{}, fmt.Errorf("unexpected program result")
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	runes := []rune(value)
	if width <= 0 || len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// formatMetadata renders "author | genre" to fit the available width
func formatMetadata(book catalog.Book, availableWidth int) string {
	var parts []string
	if book.Author != "" {
		parts = append(parts, book.Author)
	}
	if book.Genre != "" {
		parts = append(parts, book.Genre)
	}

	if len(parts) == 0 {
		return "No metadata available"
	}

	return truncate(strings.Join(parts, " | "), availableWidth)
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
