// Package tui renders the calculator: a display line, a clickable button
// grid and a performance meter around the expression engine.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/codefionn/termcalc/internal/config"
	"github.com/codefionn/termcalc/internal/engine"
	"github.com/codefionn/termcalc/internal/logger"
)

const (
	minWidth  = 27
	minHeight = 22

	highlightDuration = 100 * time.Millisecond
)

// clearHighlightMsg ends the pressed-button flash.
type clearHighlightMsg struct{}

// Model is the bubbletea model for the calculator.
type Model struct {
	width  int
	height int

	display     string
	resultShown bool

	lastEval  time.Duration
	evaluated bool

	active  string
	buttons []buttonRect

	theme     Theme
	keys      keyMap
	precision int

	animationsDisabled bool
	quitting           bool
}

// New creates a calculator model from the loaded configuration.
func New(cfg *config.Config) Model {
	precision := config.DefaultPrecision
	disableAnimations := false
	if cfg != nil {
		precision = cfg.Precision
		disableAnimations = cfg.DisableAnimations
	}
	return Model{
		display:            "0",
		theme:              DefaultTheme(),
		keys:               defaultKeyMap(),
		precision:          precision,
		animationsDisabled: disableAnimations,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			return m, m.press("C")
		case key.Matches(msg, m.keys.Evaluate):
			return m, m.press("=")
		case key.Matches(msg, m.keys.Backspace):
			m.backspace()
			return m, nil
		default:
			if label := msg.String(); isButtonKey(label) {
				return m, m.press(label)
			}
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if label, ok := hitTest(m.buttons, msg.X, msg.Y); ok {
				return m, m.press(label)
			}
		}
		return m, nil

	case clearHighlightMsg:
		m.active = ""
		return m, nil
	}

	return m, nil
}

// press applies one button activation to the display. This is the single
// entry point for mouse clicks, keyboard runes and bound keys alike.
func (m *Model) press(label string) tea.Cmd {
	cmd := m.highlight(label)

	switch label {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "(", ")":
		switch {
		case m.resultShown:
			m.display = label
			m.resultShown = false
		case m.display == "0":
			m.display = label
		default:
			m.display += label
		}

	case ".":
		if !strings.Contains(lastSegment(m.display), ".") {
			m.display += "."
		}

	case "C":
		m.display = "0"
		m.resultShown = false
		m.evaluated = false

	case "+/-":
		m.display = toggleSign(m.display)

	case "%":
		// '%' is postfix: only meaningful after a number or ')'.
		if n := len(m.display); n > 0 {
			last := m.display[n-1]
			if isDigitByte(last) || last == ')' {
				m.display += label
			}
		}

	case "+", "-", "*", "/", "^":
		// A result can seed the next calculation.
		m.display = strings.TrimRight(m.display, " ") + " " + label + " "
		m.resultShown = false

	case "=":
		m.evaluate()
	}

	return cmd
}

func (m *Model) evaluate() {
	start := time.Now()
	value, err := engine.Eval(m.display)
	m.lastEval = time.Since(start)
	m.evaluated = true
	m.resultShown = true

	if err != nil {
		logger.Debug("evaluation of %q failed: %v", m.display, err)
		m.display = errorMessage(err)
		return
	}
	m.display = FormatResult(value, m.precision)
}

func (m *Model) backspace() {
	if m.resultShown {
		m.display = "0"
		m.resultShown = false
		return
	}
	m.display = deleteLast(m.display)
}

func (m *Model) highlight(label string) tea.Cmd {
	if m.animationsDisabled {
		return nil
	}
	m.active = label
	return tea.Tick(highlightDuration, func(time.Time) tea.Msg {
		return clearHighlightMsg{}
	})
}

func (m *Model) relayout() {
	if m.width < minWidth || m.height < minHeight {
		m.buttons = nil
		return
	}
	// Margin 1 on every side; meter (1) + display (3) above the grid,
	// footer (1) below.
	m.buttons = layoutButtons(rect{
		x: 1,
		y: 5,
		w: m.width - 2,
		h: m.height - 7,
	})
}

func (m Model) View() string {
	if m.quitting || m.width == 0 {
		return ""
	}
	if m.buttons == nil {
		return fmt.Sprintf("\n Terminal too small: need at least %dx%d.\n Press q to quit.\n", minWidth, minHeight)
	}

	innerWidth := m.width - 2

	meterText := "Waiting for calculation..."
	if m.evaluated {
		meterText = fmt.Sprintf("Last operation: %d µs", m.lastEval.Microseconds())
	}
	meter := m.theme.Meter.Width(innerWidth).Render(meterText)

	display := m.theme.Display.
		Width(innerWidth - 2).
		Render(truncateHead(m.display, innerWidth-4))

	footerText := fmt.Sprintf(" %s %s • %s %s • %s %s",
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc,
		m.keys.Clear.Help().Key, m.keys.Clear.Help().Desc,
		m.keys.Evaluate.Help().Key, m.keys.Evaluate.Help().Desc)
	footer := m.theme.Footer.Render(truncate.StringWithTail(footerText, uint(innerWidth), "…"))

	body := lipgloss.JoinVertical(lipgloss.Left,
		meter,
		display,
		m.renderGrid(),
		footer,
	)

	return lipgloss.NewStyle().Padding(1, 1, 0, 1).Render(body)
}

// renderGrid draws the button grid from the same rects the mouse
// hit-testing uses.
func (m Model) renderGrid() string {
	topRows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, gridCols)
		for _, br := range m.buttons {
			if br.def.row == row {
				cells = append(cells, m.renderButton(br))
			}
		}
		topRows = append(topRows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	// Bottom two rows interlock: "+" and "=" span both, "0" spans two
	// columns. Compose the left 3-column block first, then join the tall
	// buttons beside it.
	row3 := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderLabel("1"), m.renderLabel("2"), m.renderLabel("3"))
	row4 := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderLabel("0"), m.renderLabel("."))
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, row3, row4),
		m.renderLabel("+"),
		m.renderLabel("="),
	)

	rows := append(topRows, bottom)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderLabel(label string) string {
	for _, br := range m.buttons {
		if br.def.label == label {
			return m.renderButton(br)
		}
	}
	return ""
}

func (m Model) renderButton(br buttonRect) string {
	if br.w < 2 || br.h < 2 {
		return ""
	}

	style := m.theme.NumButton
	switch {
	case m.active == br.def.label:
		style = m.theme.ActiveButton
	case br.def.kind == operatorButton:
		style = m.theme.OpButton
	case br.def.kind == equalsButton:
		style = m.theme.EqualButton
	}

	return style.Width(br.w - 2).Height(br.h - 2).Render(br.def.label)
}

// Display exposes the current display string for the caller and tests.
func (m Model) Display() string {
	return m.display
}

// LastEvalDuration returns the duration of the most recent evaluation and
// whether one has happened since the last clear.
func (m Model) LastEvalDuration() (time.Duration, bool) {
	return m.lastEval, m.evaluated
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, engine.ErrDivisionByZero):
		return "Division by zero"
	case errors.Is(err, engine.ErrUnbalancedParentheses):
		return "Unbalanced parentheses"
	case errors.Is(err, engine.ErrUnexpectedCharacter):
		return "Invalid character"
	default:
		return "Syntax error"
	}
}

func isButtonKey(s string) bool {
	switch s {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"+", "-", "*", "/", "^", "%", "(", ")", ".":
		return true
	default:
		return false
	}
}
