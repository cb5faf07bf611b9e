package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/dylanshade/style-organizer/internal/clipboard"
	"github.com/dylanshade/style-organizer/internal/service"
	"github.com/dylanshade/style-organizer/internal/store"
)

// ViewMode represents the current view in the TUI
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewEntry
	ViewConfirmDelete
	ViewContextMenu
	ViewSettings
	ViewPath
	ViewFind
	ViewPreview
)

type pathAction int

const (
	pathOpen pathAction = iota
	pathSave
)

type menuAction int

const (
	menuAddAbove menuAction = iota
	menuAddBelow
	menuSpacerAbove
	menuSpacerBelow
	menuEdit
	menuDelete
)

// listTop is the screen row of the first list item, below the title line
const listTop = 1

const doubleClickInterval = 400 * time.Millisecond

// styleItem is the list projection of one record
type styleItem struct {
	index     int
	label     string
	separator bool
}

func (i styleItem) FilterValue() string { return i.label }
func (i styleItem) Title() string       { return i.label }
func (i styleItem) Description() string { return "" }

// styleDelegate renders each record on exactly one line so screen rows map
// directly to list indexes
type styleDelegate struct{}

func (d styleDelegate) Height() int                             { return 1 }
func (d styleDelegate) Spacing() int                            { return 0 }
func (d styleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d styleDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(styleItem)
	if !ok {
		return
	}

	label := strings.ReplaceAll(it.label, "\n", " ")
	var line string
	switch {
	case index == m.Index():
		line = CreateOption(label, true)
	case it.separator:
		line = StyleSeparator.Render("  " + label)
	default:
		line = CreateOption(label, false)
	}
	fmt.Fprint(w, lipgloss.NewStyle().MaxWidth(m.Width()).Render(line))
}

// Model represents the TUI application state
type Model struct {
	service  *service.Service
	viewMode ViewMode

	// UI components
	styleList list.Model
	viewport  viewport.Model
	help      help.Model
	keys      KeyMap
	findInput textinput.Model

	// Open modal state
	interaction *service.Interaction
	entryForm   *EntryForm
	confirm     *ConfirmModal
	settings    *SettingsModal
	menu        *SelectForm
	menuAnchor  int
	pathPrompt  *PathPrompt
	pathAction  pathAction
	findOrigin  int

	glamourRenderer *glamour.TermRenderer

	lastClickIndex int
	lastClickAt    time.Time

	// Window dimensions
	width  int
	height int

	// Status messages
	statusMsg     string
	statusType    string
	statusTimeout int
}

// KeyMap defines all key bindings
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	Edit         key.Binding
	Add          key.Binding
	Delete       key.Binding
	Menu         key.Binding
	Separator    key.Binding
	Open         key.Binding
	Save         key.Binding
	QuickSave    key.Binding
	Settings     key.Binding
	ToggleInfo   key.Binding
	CopyPrompt   key.Binding
	CopyNegative key.Binding
	Preview      key.Binding
	Find         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns keybindings to show in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Add, k.Delete, k.Menu, k.Open, k.Save, k.Help, k.Quit}
}

// FullHelp returns keybindings to show in the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown},
		{k.Edit, k.Add, k.Delete, k.Menu, k.Separator},
		{k.Open, k.Save, k.QuickSave, k.Settings, k.ToggleInfo},
		{k.CopyPrompt, k.CopyNegative, k.Preview, k.Find},
		{k.Help, k.Quit},
	}
}

var keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up", "ctrl+up"),
		key.WithHelp("K", "move style up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down", "ctrl+down"),
		key.WithHelp("J", "move style down"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add style"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete style"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	Separator: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "add spacer below"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "load csv"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save csv"),
	),
	QuickSave: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save to current file"),
	),
	Settings: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "settings"),
	),
	ToggleInfo: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle full info"),
	),
	CopyPrompt: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy prompt"),
	),
	CopyNegative: key.NewBinding(
		key.WithKeys("Y"),
		key.WithHelp("Y", "copy negative prompt"),
	),
	Preview: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "preview"),
	),
	Find: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "find"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// NewModel creates a new TUI model over svc
func NewModel(svc *service.Service) *Model {
	l := list.New(nil, styleDelegate{}, 80, 20) // Default size, will be updated on first WindowSizeMsg
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().Padding(1, 2)

	find := textinput.New()
	find.Prompt = "/"
	find.Placeholder = "find style"
	find.Width = 40

	m := &Model{
		service:        svc,
		viewMode:       ViewList,
		styleList:      l,
		viewport:       vp,
		help:           help.New(),
		keys:           keys,
		findInput:      find,
		lastClickIndex: -1,
	}
	m.refreshItems(0)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// tickMsg is sent to clear the status message
type tickMsg time.Time

// clearStatusCmd returns a command that clears the status message after a delay
func clearStatusCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) setStatus(text, statusType string) tea.Cmd {
	m.statusMsg = text
	m.statusType = statusType
	m.statusTimeout = 2
	if statusType == "error" {
		m.statusTimeout = 4
	}
	return clearStatusCmd()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.statusTimeout > 0 {
			m.statusTimeout--
			if m.statusTimeout == 0 {
				m.statusMsg = ""
			} else {
				return m, clearStatusCmd()
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.viewMode {
	case ViewEntry:
		cmd = m.updateEntry(msg)
	case ViewConfirmDelete:
		cmd = m.updateConfirm(msg)
	case ViewContextMenu:
		cmd = m.updateMenu(msg)
	case ViewSettings:
		cmd = m.updateSettings(msg)
	case ViewPath:
		cmd = m.updatePath(msg)
	case ViewFind:
		cmd = m.updateFind(msg)
	case ViewPreview:
		cmd = m.updatePreview(msg)
	default:
		return m.updateList(msg)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Edit):
			return m, m.beginEdit(m.selectedIndex())
		case key.Matches(msg, m.keys.Add):
			return m, m.beginAdd(store.AppendPosition())
		case key.Matches(msg, m.keys.Delete):
			return m, m.beginDelete(m.selectedIndex())
		case key.Matches(msg, m.keys.Menu):
			return m, m.openMenu(m.selectedIndex())
		case key.Matches(msg, m.keys.Separator):
			return m, m.addSeparator(store.BelowPosition(m.selectedIndex()))
		case key.Matches(msg, m.keys.MoveUp):
			return m, m.move(-1)
		case key.Matches(msg, m.keys.MoveDown):
			return m, m.move(1)
		case key.Matches(msg, m.keys.Open):
			m.openPathPrompt(pathOpen)
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Save):
			m.openPathPrompt(pathSave)
			return m, textinput.Blink
		case key.Matches(msg, m.keys.QuickSave):
			if m.service.TablePath() == "" {
				m.openPathPrompt(pathSave)
				return m, textinput.Blink
			}
			return m, m.save(m.service.TablePath())
		case key.Matches(msg, m.keys.Settings):
			return m, m.openSettings()
		case key.Matches(msg, m.keys.ToggleInfo):
			return m, m.toggleFullInfo()
		case key.Matches(msg, m.keys.CopyPrompt):
			return m, m.copySelected(clipboard.FieldPrompt)
		case key.Matches(msg, m.keys.CopyNegative):
			return m, m.copySelected(clipboard.FieldNegativePrompt)
		case key.Matches(msg, m.keys.Preview):
			return m, m.openPreview(m.selectedIndex())
		case key.Matches(msg, m.keys.Find):
			return m, m.openFind()
		case msg.String() == "esc":
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.styleList, cmd = m.styleList.Update(msg)
	return m, cmd
}

// selectedIndex returns the store index of the highlighted row, or -1
func (m Model) selectedIndex() int {
	if item, ok := m.styleList.SelectedItem().(styleItem); ok {
		return item.index
	}
	return -1
}

// refreshItems rebuilds every row from the service, which makes the list a
// pure projection of the store and the current preferences
func (m *Model) refreshItems(selected int) {
	labels := m.service.Labels()
	styles := m.service.Styles()

	items := make([]list.Item, len(labels))
	for i := range labels {
		items[i] = styleItem{index: i, label: labels[i], separator: styles[i].IsSeparator()}
	}
	m.styleList.SetItems(items)

	if selected >= len(items) {
		selected = len(items) - 1
	}
	if selected >= 0 {
		m.styleList.Select(selected)
	}
}

func (m *Model) closeModal() {
	m.viewMode = ViewList
	m.interaction = nil
	m.entryForm = nil
	m.confirm = nil
	m.settings = nil
	m.menu = nil
	m.pathPrompt = nil
}

func (m *Model) beginAdd(pos store.Position) tea.Cmd {
	ia, err := m.service.BeginAdd(pos)
	if err != nil {
		return m.setStatus(err.Error(), "error")
	}
	m.openEntry(ia)
	return textinput.Blink
}

func (m *Model) beginEdit(index int) tea.Cmd {
	ia, err := m.service.BeginEdit(index)
	if err != nil {
		return m.setStatus(err.Error(), "error")
	}
	if ia == nil {
		return nil
	}
	m.openEntry(ia)
	return textinput.Blink
}

func (m *Model) openEntry(ia *service.Interaction) {
	m.interaction = ia
	m.entryForm = NewEntryForm(ia.Initial())
	m.entryForm.Resize(m.width)
	m.viewMode = ViewEntry
}

func (m *Model) updateEntry(msg tea.Msg) tea.Cmd {
	cmd := m.entryForm.Update(msg)

	switch {
	case m.entryForm.IsCancelled():
		m.interaction.Cancel()
		m.closeModal()
		return nil
	case m.entryForm.IsSubmitted():
		ia := m.interaction
		style := m.entryForm.ToStyle()
		m.closeModal()
		idx, err := ia.Confirm(style)
		if err != nil {
			return m.setStatus(fmt.Sprintf("Save failed: %v", err), "error")
		}
		m.refreshItems(idx)
		return m.setStatus("Style saved", "success")
	}
	return cmd
}

func (m *Model) beginDelete(index int) tea.Cmd {
	ia, err := m.service.BeginDelete(index)
	if err != nil {
		return m.setStatus(err.Error(), "error")
	}
	if ia == nil {
		return nil
	}
	m.interaction = ia
	m.confirm = NewConfirmModal("Delete Style", "Are you sure you want to delete this style?")
	m.viewMode = ViewConfirmDelete
	return m.confirm.Init()
}

func (m *Model) updateConfirm(msg tea.Msg) tea.Cmd {
	cmd := m.confirm.Update(msg)
	if !m.confirm.Done() {
		return cmd
	}
	return m.resolveDelete(m.confirm.Confirmed())
}

// resolveDelete finishes the open delete interaction with the user's answer
func (m *Model) resolveDelete(yes bool) tea.Cmd {
	ia := m.interaction
	m.closeModal()
	if ia == nil {
		return nil
	}
	if !yes {
		ia.Cancel()
		return nil
	}

	idx, err := ia.Confirm(ia.Initial())
	if err != nil {
		return m.setStatus(fmt.Sprintf("Delete failed: %v", err), "error")
	}
	m.refreshItems(idx)
	return m.setStatus("Style deleted", "success")
}

func (m *Model) openMenu(anchor int) tea.Cmd {
	m.menuAnchor = anchor
	m.menu = NewSelectForm([]SelectOption{
		{Label: "Add New Style Above", Value: menuAddAbove},
		{Label: "Add New Style Below", Value: menuAddBelow},
		{Label: "Add Spacer Above", Value: menuSpacerAbove},
		{Label: "Add Spacer Below", Value: menuSpacerBelow},
		{Label: "Edit", Value: menuEdit},
		{Label: "Delete", Value: menuDelete},
	})
	m.viewMode = ViewContextMenu
	return nil
}

func (m *Model) updateMenu(msg tea.Msg) tea.Cmd {
	m.menu.Update(msg)

	if m.menu.IsCancelled() {
		m.closeModal()
		return nil
	}
	if !m.menu.IsSubmitted() {
		return nil
	}

	selected := m.menu.GetSelected()
	anchor := m.menuAnchor
	m.closeModal()
	if selected == nil {
		return nil
	}

	switch selected.Value.(menuAction) {
	case menuAddAbove:
		return m.beginAdd(store.AbovePosition(anchor))
	case menuAddBelow:
		return m.beginAdd(store.BelowPosition(anchor))
	case menuSpacerAbove:
		return m.addSeparator(store.AbovePosition(anchor))
	case menuSpacerBelow:
		return m.addSeparator(store.BelowPosition(anchor))
	case menuEdit:
		return m.beginEdit(anchor)
	case menuDelete:
		return m.beginDelete(anchor)
	}
	return nil
}

func (m *Model) addSeparator(pos store.Position) tea.Cmd {
	idx, err := m.service.AddSeparator(pos)
	if err != nil {
		return m.setStatus(err.Error(), "error")
	}
	m.refreshItems(idx)
	return m.setStatus("Spacer added", "success")
}

func (m *Model) move(delta int) tea.Cmd {
	from := m.selectedIndex()
	to := from + delta
	if from < 0 || to < 0 || to >= m.service.Len() {
		return nil
	}
	if err := m.service.Move(from, to); err != nil {
		return m.setStatus(err.Error(), "error")
	}
	m.refreshItems(to)
	return nil
}

func (m *Model) openSettings() tea.Cmd {
	m.settings = NewSettingsModal(m.service.Preferences())
	m.viewMode = ViewSettings
	return m.settings.Init()
}

func (m *Model) updateSettings(msg tea.Msg) tea.Cmd {
	cmd := m.settings.Update(msg)
	if !m.settings.Done() {
		return cmd
	}

	submitted := m.settings.Submitted()
	prefs, err := m.settings.Preferences()
	m.closeModal()
	if !submitted {
		return nil
	}
	if err != nil {
		return m.setStatus(err.Error(), "error")
	}
	return m.applyPreferences(prefs.ShowFullPromptInfo, prefs.FontSize)
}

func (m *Model) toggleFullInfo() tea.Cmd {
	prefs := m.service.Preferences()
	return m.applyPreferences(!prefs.ShowFullPromptInfo, prefs.FontSize)
}

func (m *Model) applyPreferences(showFull bool, fontSize int) tea.Cmd {
	prefs := m.service.Preferences()
	prefs.ShowFullPromptInfo = showFull
	prefs.FontSize = fontSize
	if err := m.service.UpdatePreferences(prefs); err != nil {
		return m.setStatus(fmt.Sprintf("Settings not saved: %v", err), "error")
	}
	m.refreshItems(m.selectedIndex())
	return m.setStatus("Settings saved", "success")
}

func (m *Model) openPathPrompt(action pathAction) {
	title := "Open CSV File:"
	if action == pathSave {
		title = "Save CSV File:"
	}
	m.pathAction = action
	m.pathPrompt = NewPathPrompt(title, m.service.TablePath())
	m.viewMode = ViewPath
}

func (m *Model) updatePath(msg tea.Msg) tea.Cmd {
	cmd := m.pathPrompt.Update(msg)

	if m.pathPrompt.IsCancelled() {
		m.closeModal()
		return nil
	}
	if !m.pathPrompt.IsSubmitted() {
		return cmd
	}

	path := strings.TrimSpace(m.pathPrompt.Value())
	action := m.pathAction
	m.closeModal()
	if path == "" {
		return nil
	}
	if action == pathOpen {
		return m.open(path)
	}
	return m.save(path)
}

func (m *Model) open(path string) tea.Cmd {
	if err := m.service.Open(path); err != nil {
		return m.setStatus(fmt.Sprintf("Load failed: %v", err), "error")
	}
	m.refreshItems(0)
	return m.setStatus(fmt.Sprintf("Loaded %d styles from %s", m.service.Len(), filepath.Base(path)), "success")
}

func (m *Model) save(path string) tea.Cmd {
	if err := m.service.Save(path); err != nil {
		return m.setStatus(fmt.Sprintf("Save failed: %v", err), "error")
	}
	return m.setStatus(fmt.Sprintf("Saved %d styles to %s", m.service.Len(), filepath.Base(path)), "success")
}

func (m *Model) copySelected(field clipboard.Field) tea.Cmd {
	style, ok := m.service.Style(m.selectedIndex())
	if !ok {
		return nil
	}
	msg, err := clipboard.CopyStyle(style, field)
	if err != nil {
		return m.setStatus(err.Error(), "error")
	}
	return m.setStatus(msg, "success")
}

func (m *Model) openFind() tea.Cmd {
	m.findOrigin = m.selectedIndex()
	m.findInput.SetValue("")
	m.viewMode = ViewFind
	return m.findInput.Focus()
}

func (m *Model) updateFind(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			if m.findOrigin >= 0 {
				m.styleList.Select(m.findOrigin)
			}
			m.findInput.Blur()
			m.viewMode = ViewList
			return nil
		case "enter":
			m.findInput.Blur()
			m.viewMode = ViewList
			return nil
		}
	}

	var cmd tea.Cmd
	m.findInput, cmd = m.findInput.Update(msg)
	if query := m.findInput.Value(); query != "" {
		if matches := m.service.Find(query); len(matches) > 0 {
			m.styleList.Select(matches[0])
		}
	}
	return cmd
}

func (m *Model) openPreview(index int) tea.Cmd {
	style, ok := m.service.Style(index)
	if !ok {
		return nil
	}

	if m.glamourRenderer == nil {
		wrap := m.width - 8
		if wrap <= 0 {
			wrap = 80
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return m.setStatus(fmt.Sprintf("Preview failed: %v", err), "error")
		}
		m.glamourRenderer = renderer
	}

	formatted, err := m.glamourRenderer.Render(style.Markdown())
	if err != nil {
		formatted = style.Markdown()
	}
	m.viewport.SetContent(formatted)
	m.viewport.GotoTop()
	m.viewMode = ViewPreview
	return nil
}

func (m *Model) updatePreview(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "b", "left", "h":
			m.viewMode = ViewList
			return nil
		case "y":
			return m.copySelected(clipboard.FieldPrompt)
		case "Y":
			return m.copySelected(clipboard.FieldNegativePrompt)
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.styleList.CursorUp()
		return nil
	case tea.MouseButtonWheelDown:
		m.styleList.CursorDown()
		return nil
	}

	idx := m.itemAt(msg.Y)
	if idx >= 0 {
		m.styleList.Select(idx)
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		now := time.Now()
		double := idx >= 0 && idx == m.lastClickIndex && now.Sub(m.lastClickAt) < doubleClickInterval
		m.lastClickIndex, m.lastClickAt = idx, now
		if double {
			m.lastClickIndex = -1
			return m.beginEdit(idx)
		}
	case tea.MouseButtonRight:
		return m.openMenu(idx)
	}
	return nil
}

// itemAt maps a screen row to a store index, or -1 when the row is empty
func (m Model) itemAt(y int) int {
	row := y - listTop
	perPage := m.styleList.Paginator.PerPage
	if row < 0 || row >= perPage {
		return -1
	}
	idx := m.styleList.Paginator.Page*perPage + row
	if idx >= len(m.styleList.Items()) {
		return -1
	}
	return idx
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	// title, help and status lines
	m.styleList.SetSize(width, height-3)
	m.viewport.Width = width - 4
	m.viewport.Height = height - 5
	m.help.Width = width

	if m.entryForm != nil {
		m.entryForm.Resize(width)
	}
	m.glamourRenderer = nil
}

// View renders the UI
func (m Model) View() string {
	var mainView string

	switch m.viewMode {
	case ViewEntry:
		mainView = m.renderEntryView()
	case ViewConfirmDelete:
		mainView = m.renderModal(m.confirm.View())
	case ViewContextMenu:
		mainView = m.renderModal(m.menu.View())
	case ViewSettings:
		mainView = m.renderModal(m.settings.View())
	case ViewPath:
		mainView = m.renderModal(m.pathPrompt.View())
	case ViewPreview:
		mainView = m.renderPreviewView()
	default:
		mainView = m.renderListView()
	}

	if m.statusMsg != "" {
		return lipgloss.JoinVertical(lipgloss.Left, mainView, CreateStatus(m.statusMsg, m.statusType))
	}
	return mainView
}

func (m Model) renderListView() string {
	title := StyleTitle.Render("Stable Diffusion Style Organizer")

	file := m.service.TablePath()
	if file == "" {
		file = "no file"
	}
	meta := fmt.Sprintf("%s • %d styles", file, m.service.Len())
	if m.service.Modified() {
		meta += " • [modified]"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Left, title, StyleMetadata.Render(meta))

	body := m.styleList.View()
	if m.service.Len() == 0 {
		body = StyleTextDim.Padding(1, 2).Render("No styles yet. Press o to load a CSV file or a to add a style.")
	}

	footer := m.help.View(m.keys)
	if m.viewMode == ViewFind {
		footer = m.findInput.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderEntryView() string {
	titleText := "Add Style"
	if m.interaction != nil && m.interaction.Kind() == service.KindEdit {
		titleText = "Edit Style"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		CreateHeader("Cancel", titleText),
		"",
		m.entryForm.View(),
		"",
		CreateHelp("Tab next field • Shift+Tab prev field • Ctrl+S save • Esc cancel", m.width),
	)
}

func (m Model) renderPreviewView() string {
	style, _ := m.service.Style(m.selectedIndex())
	return lipgloss.JoinVertical(
		lipgloss.Left,
		CreateHeader("Back", style.Name),
		m.viewport.View(),
		CreateHelp("y copy prompt • Y copy negative prompt • ←/esc/b back", m.width),
	)
}

func (m Model) renderModal(content string) string {
	return CenterModal(StyleModal.Render(content), m.width, m.height-1)
}
