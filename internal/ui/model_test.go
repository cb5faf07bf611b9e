package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/dylanshade/style-organizer/internal/models"
	"github.com/dylanshade/style-organizer/internal/service"
	"github.com/dylanshade/style-organizer/internal/storage"
)

var (
	styleA = models.Style{Name: "A", Prompt: "p1", NegativePrompt: "n1"}
	styleB = models.Style{Name: "B", Prompt: "p2", NegativePrompt: "n2"}
)

func newTestModel(t *testing.T, rows ...models.Style) (Model, *service.Service) {
	t.Helper()
	dir := t.TempDir()
	st := storage.NewStorage(filepath.Join(dir, "settings.json"))
	svc, err := service.NewService(st)
	require.NoError(t, err)

	path := filepath.Join(dir, "styles.csv")
	require.NoError(t, st.SaveTable(path, rows))
	require.NoError(t, svc.Open(path))

	return send(t, *NewModel(svc), tea.WindowSizeMsg{Width: 100, Height: 30}), svc
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func itemLabels(m Model) []string {
	var labels []string
	for _, item := range m.styleList.Items() {
		labels = append(labels, item.(styleItem).label)
	}
	return labels
}

func TestAddStyleFromKeyboard(t *testing.T) {
	m, svc := newTestModel(t, styleA, styleB)

	m = send(t, m, runes("a"))
	require.Equal(t, ViewEntry, m.viewMode)
	require.NotNil(t, svc.Pending())

	m = send(t, m, runes("New"), keyCtrlS)
	require.Equal(t, ViewList, m.viewMode)
	require.Nil(t, svc.Pending())
	require.Equal(t, []models.Style{styleA, styleB, {Name: "New"}}, svc.Styles())
	require.Equal(t, 2, m.selectedIndex())
	require.True(t, svc.Modified())
}

func TestEditCancelLeavesListUnchanged(t *testing.T) {
	m, svc := newTestModel(t, styleA, styleB)

	m = send(t, m, keyEnter)
	require.Equal(t, ViewEntry, m.viewMode)
	require.Equal(t, styleA, m.entryForm.ToStyle())

	m = send(t, m, runes("zzz"), keyEsc)
	require.Equal(t, ViewList, m.viewMode)
	require.Equal(t, []models.Style{styleA, styleB}, svc.Styles())
	require.False(t, svc.Modified())
}

func TestEditReplacesSelectedStyle(t *testing.T) {
	m, svc := newTestModel(t, styleA, styleB)

	m = send(t, m, keyDown, runes("e"), runes("2"), keyCtrlS)
	require.Equal(t, []models.Style{styleA, {Name: "B2", Prompt: "p2", NegativePrompt: "n2"}}, svc.Styles())
	require.Equal(t, 1, m.selectedIndex())
}

func TestUnchangedEditKeepsExactText(t *testing.T) {
	tabbed := models.Style{Name: "Tabs\there", Prompt: "a\tb", NegativePrompt: "c\td"}
	long := models.Style{Name: "Long", Prompt: strings.Repeat("line\n", 150) + "end"}
	m, svc := newTestModel(t, tabbed, long)

	m = send(t, m, keyEnter, keyCtrlS)
	m = send(t, m, keyDown, keyEnter, keyCtrlS)
	require.Equal(t, []models.Style{tabbed, long}, svc.Styles())
}

func TestEditOneFieldKeepsOthersExact(t *testing.T) {
	tabbed := models.Style{Name: "Tabs", Prompt: "a\tb", NegativePrompt: "c\td"}
	m, svc := newTestModel(t, tabbed)

	m = send(t, m, keyEnter, runes("!"), keyCtrlS)
	require.Equal(t, []models.Style{{Name: "Tabs!", Prompt: "a\tb", NegativePrompt: "c\td"}}, svc.Styles())
}

func TestDeleteConfirmation(t *testing.T) {
	m, svc := newTestModel(t, styleA, styleB)

	m = send(t, m, runes("d"))
	require.Equal(t, ViewConfirmDelete, m.viewMode)
	m.resolveDelete(false)
	require.Equal(t, ViewList, m.viewMode)
	require.Equal(t, []models.Style{styleA, styleB}, svc.Styles())

	m = send(t, m, runes("d"))
	m.resolveDelete(true)
	require.Equal(t, []models.Style{styleB}, svc.Styles())
	require.Equal(t, []string{styleB.Label(true)}, itemLabels(m))
}

func TestDeleteOnEmptyListIsNoop(t *testing.T) {
	m, svc := newTestModel(t)

	m = send(t, m, runes("d"))
	require.Equal(t, ViewList, m.viewMode)
	require.Nil(t, svc.Pending())
}

func TestContextMenuAddsSpacerAbove(t *testing.T) {
	m, svc := newTestModel(t, styleA, styleB)

	m = send(t, m, keyDown, runes("m"))
	require.Equal(t, ViewContextMenu, m.viewMode)

	m = send(t, m, keyDown, keyDown, keyEnter)
	require.Equal(t, ViewList, m.viewMode)
	require.Equal(t, []models.Style{styleA, models.Separator(), styleB}, svc.Styles())
	require.Equal(t, 1, m.selectedIndex())
}

func TestSpacerKeyReportsStatus(t *testing.T) {
	m, svc := newTestModel(t, styleA, styleB)

	m = send(t, m, runes("-"))
	require.Equal(t, []models.Style{styleA, models.Separator(), styleB}, svc.Styles())
	require.Equal(t, "Spacer added", m.statusMsg)
	require.Equal(t, "success", m.statusType)
}

func TestContextMenuEscCancels(t *testing.T) {
	m, svc := newTestModel(t, styleA)

	m = send(t, m, runes("m"), keyEsc)
	require.Equal(t, ViewList, m.viewMode)
	require.Equal(t, []models.Style{styleA}, svc.Styles())
}

func TestRightClickOpensMenuOnRow(t *testing.T) {
	m, _ := newTestModel(t, styleA, styleB)

	m = send(t, m, tea.MouseMsg{X: 4, Y: listTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	require.Equal(t, ViewContextMenu, m.viewMode)
	require.Equal(t, 1, m.menuAnchor)
}

func TestRightClickBelowRowsHasNoAnchor(t *testing.T) {
	m, svc := newTestModel(t, styleA)

	m = send(t, m, tea.MouseMsg{X: 4, Y: listTop + 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	require.Equal(t, -1, m.menuAnchor)

	// "Add New Style Below" with no anchor appends
	m = send(t, m, keyDown, keyEnter, runes("Z"), keyCtrlS)
	require.Equal(t, []models.Style{styleA, {Name: "Z"}}, svc.Styles())
}

func TestMoveSelectedStyle(t *testing.T) {
	m, svc := newTestModel(t, styleA, styleB)

	m = send(t, m, runes("J"))
	require.Equal(t, []models.Style{styleB, styleA}, svc.Styles())
	require.Equal(t, 1, m.selectedIndex())

	// already last
	m = send(t, m, runes("J"))
	require.Equal(t, []models.Style{styleB, styleA}, svc.Styles())

	m = send(t, m, runes("K"))
	require.Equal(t, []models.Style{styleA, styleB}, svc.Styles())
	require.Equal(t, 0, m.selectedIndex())
}

func TestToggleFullInfoRelabelsRows(t *testing.T) {
	m, svc := newTestModel(t, styleA, models.Separator())
	require.Equal(t, svc.Labels(), itemLabels(m))

	m = send(t, m, runes("t"))
	require.False(t, svc.Preferences().ShowFullPromptInfo)
	require.Equal(t, []string{"A", models.SeparatorName}, itemLabels(m))
}

func TestEscDoesNotQuit(t *testing.T) {
	m, _ := newTestModel(t, styleA)

	_, cmd := m.Update(keyEsc)
	require.Nil(t, cmd)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, styleA)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFindSelectsBestMatch(t *testing.T) {
	m, _ := newTestModel(t, styleA, models.Style{Name: "Watercolor", Prompt: "soft paint"})

	m = send(t, m, runes("/"), runes("water"))
	require.Equal(t, ViewFind, m.viewMode)
	require.Equal(t, 1, m.selectedIndex())

	m = send(t, m, keyEsc)
	require.Equal(t, ViewList, m.viewMode)
	require.Equal(t, 0, m.selectedIndex())
}

func TestOpenFailureKeepsList(t *testing.T) {
	m, svc := newTestModel(t, styleA)

	m = send(t, m, runes("o"))
	require.Equal(t, ViewPath, m.viewMode)
	m.pathPrompt.input.SetValue(filepath.Join(t.TempDir(), "missing.csv"))

	m = send(t, m, keyEnter)
	require.Equal(t, ViewList, m.viewMode)
	require.Equal(t, "error", m.statusType)
	require.Equal(t, []models.Style{styleA}, svc.Styles())
}

func TestViewShowsRowsAndDirtyMarker(t *testing.T) {
	m, _ := newTestModel(t, models.Style{Name: "Multi", Prompt: "line one\nline two"}, models.Separator())

	view := m.View()
	require.Contains(t, view, "Multi: line one line two")
	require.Contains(t, view, models.SeparatorName)
	require.NotContains(t, view, "[modified]")

	m = send(t, m, runes("-"))
	require.Contains(t, m.View(), "[modified]")
}
