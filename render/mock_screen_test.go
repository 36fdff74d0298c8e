package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// MockScreen records SetContent calls for assertions
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	styles        map[[2]int]tcell.Style
	shown         int
}

func newMockScreen(width, height int) *MockScreen {
	return &MockScreen{
		width:  width,
		height: height,
		cells:  make(map[[2]int]rune),
		styles: make(map[[2]int]tcell.Style),
	}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Show()             { m.shown++ }

func (m *MockScreen) Clear() {
	m.cells = make(map[[2]int]rune)
	m.styles = make(map[[2]int]tcell.Style)
}

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
	m.styles[[2]int{x, y}] = style
}

func (m *MockScreen) runeAt(x, y int) rune {
	return m.cells[[2]int{x, y}]
}

func (m *MockScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		if ch, ok := m.cells[[2]int{x, y}]; ok {
			b.WriteRune(ch)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func (m *MockScreen) text() string {
	rows := make([]string, m.height)
	for y := range rows {
		rows[y] = m.row(y)
	}
	return strings.Join(rows, "\n")
}
