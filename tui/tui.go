package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/cancelcore/cli"
	"github.com/nathoo/cancelcore/engine"
	"github.com/nathoo/cancelcore/engine/fighter"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed input
	isSystem bool // true for meta-command output
}

// Model is the Bubble Tea model for the simulator TUI.
type Model struct {
	engine *engine.Engine
	defs   *fighter.Defs

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated narrative lines (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	saveDir  string
}

// engineOutputMsg carries output from the engine into the Update loop.
type engineOutputMsg struct {
	input    string   // echoed input (empty for the banner)
	lines    []string // output lines
	isSystem bool     // true for meta-command output
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, defs *fighter.Defs) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		defs:    defs,
		input:   ti,
		history: NewHistory(100),
		trace:   eng.Opts.Trace,
		saveDir: cli.DefaultSaveDir(),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, defs *fighter.Defs) error {
	m := New(eng, defs)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that prints the banner and first summary.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		return engineOutputMsg{lines: []string{
			cli.Banner(m.defs),
			"Type /help for the input vocabulary.",
			"",
			m.engine.Summary(),
		}}
	}
}

// Update handles messages (key presses, window resize, engine output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// One row each for the status bar and the input line.
		vpHeight := max(m.height-2, 1)

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}

	case engineOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleKey runs the simulator's own key bindings. handled is false for
// keys that belong to the text input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit, true

	case key.Matches(msg, keys.Submit):
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		next, cmd := m.submit(line)
		return next, cmd, true

	case key.Matches(msg, keys.StepFrame):
		next, cmd := m.submit("wait")
		return next, cmd, true

	case key.Matches(msg, keys.Repeat):
		next, cmd := m.submit("g")
		return next, cmd, true

	case key.Matches(msg, keys.Older):
		if prev, ok := m.history.Prev(); ok {
			m.input.SetValue(prev)
			m.input.CursorEnd()
		}
		return m, nil, true

	case key.Matches(msg, keys.Newer):
		if next, ok := m.history.Next(); ok {
			m.input.SetValue(next)
			m.input.CursorEnd()
		} else {
			m.input.SetValue("")
			m.history.ResetCursor()
		}
		return m, nil, true

	case key.Matches(msg, keys.Scroll):
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		return m, vpCmd, true
	}
	return m, nil, false
}

// submit runs one line: a repeat, a meta-command or frame input.
func (m Model) submit(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		return m, nil
	}

	// "again" / "g" repeats the newest frame input.
	if isRepeat(input) {
		last, ok := m.history.LastInput()
		if !ok {
			m = m.appendOutput(engineOutputMsg{
				input: input, lines: []string{"Nothing to repeat."}, isSystem: true,
			})
			return m, nil
		}
		input = last
	}
	m.history.Push(input)
	m.history.ResetCursor()

	if strings.HasPrefix(input, "/") {
		output, quit := cli.Meta(m.engine, m.saveDir, input, &m.trace)
		if strings.Fields(input)[0] == "/help" {
			output = append(output, "", keys.helpLine())
		}
		m = m.appendOutput(engineOutputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	result := m.engine.Step(input)
	output := result.Output
	if m.trace {
		output = append(output, cli.TraceLines(result)...)
	}
	m = m.appendOutput(engineOutputMsg{input: input, lines: output})
	return m, nil
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg engineOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + msg.input, isInput: true,
		})
	}

	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// render wraps the line to width and applies its style.
func (rl rawLine) render(width int) string {
	if rl.text == "" {
		return ""
	}
	wrapped := wordWrap(rl.text, width)
	switch {
	case rl.isInput:
		return stylePlayerInput.Render(wrapped)
	case rl.isSystem:
		return styleSystem.Render(wrapped)
	}
	return renderLineKind(wrapped, rl.kind)
}

// refreshViewport rebuilds the viewport content at the current width and
// scrolls to the newest frame.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	width := max(m.width, 10)

	styled := make([]string, len(m.rawLines))
	for i, rl := range m.rawLines {
		styled[i] = rl.render(width)
	}
	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap breaks text at spaces so no line exceeds width, unless a
// single word is longer than width.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var lines []string
	var cur []string
	curLen := 0
	for _, w := range strings.Fields(text) {
		if len(cur) > 0 && curLen+1+len(w) > width {
			lines = append(lines, strings.Join(cur, " "))
			cur, curLen = nil, 0
		}
		if len(cur) > 0 {
			curLen++
		}
		cur = append(cur, w)
		curLen += len(w)
	}
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}
	return strings.Join(lines, "\n")
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// keyMap holds the simulator's bindings.
type keyMap struct {
	Quit      key.Binding
	Submit    key.Binding
	StepFrame key.Binding
	Repeat    key.Binding
	Older     key.Binding
	Newer     key.Binding
	Scroll    key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run line")),
	StepFrame: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "one neutral frame")),
	Repeat:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "repeat last input")),
	Older:     key.NewBinding(key.WithKeys("up"), key.WithHelp("up/down", "input history")),
	Newer:     key.NewBinding(key.WithKeys("down")),
	Scroll:    key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
}

// helpLine lists the bindings that carry help text.
func (k keyMap) helpLine() string {
	var parts []string
	for _, b := range []key.Binding{k.StepFrame, k.Repeat, k.Older, k.Scroll, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "Keys: " + strings.Join(parts, ", ")
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (those recall input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
