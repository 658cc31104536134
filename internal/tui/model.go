package tui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termsnake/internal/game"
	"termsnake/internal/input"
)

// phase is the loop-level state of the game, distinct from the
// simulation's own over flag.
type phase int

const (
	phaseAwaitStart phase = iota
	phaseRunning
	phasePaused
	phaseGameOver
)

const (
	// Idle tick cadence before the first keypress.
	startPollInterval = 10 * time.Millisecond
	// Idle tick cadence while paused.
	pausePollInterval = 50 * time.Millisecond
)

type Model struct {
	state game.State
	phase phase

	ready bool
	w     int
	h     int

	viewBuf bytes.Buffer

	// Cached cell canvas to reduce per-frame allocations.
	canvas canvasBuf
}

func NewModel(cfg game.Config) *Model {
	return &Model{
		state: game.NewState(cfg),
		phase: phaseAwaitStart,
	}
}

// State returns the simulation state; the final score/length/level are
// read from it after the program quits.
func (m *Model) State() game.State {
	return m.state
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Second / 60
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tickInterval())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		m.ready = true
		return m, nil
	case tickMsg:
		if m.phase == phaseGameOver {
			return m, nil
		}
		if m.phase == phaseRunning {
			m.state.Step()
			if m.state.Over {
				m.phase = phaseGameOver
				return m, tea.Quit
			}
		}
		// Re-arm with the interval for the state we are now in; a
		// speed-up applies to the very tick it happened on.
		return m, tickCmd(m.tickInterval())
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.phase = phaseGameOver
			return m, tea.Quit
		}
		switch m.phase {
		case phaseAwaitStart:
			// Any key starts; the keystroke itself is consumed, not
			// interpreted as a command.
			m.phase = phaseRunning
		case phasePaused:
			// Everything except the pause toggle is ignored.
			if input.Map(msg.String()) == input.TogglePause {
				m.phase = phaseRunning
			}
		case phaseRunning:
			switch input.Map(msg.String()) {
			case input.MoveUp:
				m.state.SetDirection(game.DirUp)
			case input.MoveDown:
				m.state.SetDirection(game.DirDown)
			case input.MoveLeft:
				m.state.SetDirection(game.DirLeft)
			case input.MoveRight:
				m.state.SetDirection(game.DirRight)
			case input.TogglePause:
				m.phase = phasePaused
			case input.Quit:
				// Immediate: no further simulation step.
				m.phase = phaseGameOver
				return m, tea.Quit
			}
		}
		return m, nil
	default:
		return m, nil
	}
}

// tickInterval is the time until the next tick message. While running it
// is the simulation delay; otherwise a short poll cadence so key events
// keep the screen fresh.
func (m *Model) tickInterval() time.Duration {
	switch m.phase {
	case phaseAwaitStart:
		return startPollInterval
	case phasePaused:
		return pausePollInterval
	default:
		return m.state.Delay
	}
}

func (m *Model) View() string {
	if !m.ready {
		return "loading...\n"
	}

	m.viewBuf.Reset()
	b := &m.viewBuf

	hud := renderHUD(m.state)
	infoLine := ""
	switch m.phase {
	case phaseAwaitStart:
		infoLine = "press any key to start (w/a/s/d to move)"
	case phaseRunning:
		infoLine = "w/a/s/d move | p pause | q quit"
	}
	if infoLine != "" {
		infoLine = styleHudDim.Render(infoLine)
	}

	frameW := m.state.Width + 2
	contentW := frameW
	if w := lipgloss.Width(hud); w > contentW {
		contentW = w
	}
	if w := lipgloss.Width(infoLine); w > contentW {
		contentW = w
	}
	leftPad := 0
	if m.w > contentW {
		leftPad = (m.w - contentW) / 2
	}
	leftPadStr := ""
	if leftPad > 0 {
		leftPadStr = strings.Repeat(" ", leftPad)
	}

	// Center vertically as well.
	// Lines: HUD(1) + info(1) + bordered board(height+2) + trailing blank(1)
	contentH := 1 + 1 + (m.state.Height + 2) + 1
	topPad := 0
	if m.h > contentH {
		topPad = (m.h - contentH) / 2
	}
	for i := 0; i < topPad; i++ {
		b.WriteString("\n")
	}

	b.WriteString(leftPadStr)
	b.WriteString(hud)
	b.WriteString("\n")
	if infoLine != "" {
		b.WriteString(leftPadStr)
		b.WriteString(infoLine)
	}
	b.WriteString("\n")

	var overlay *fieldOverlay
	if m.phase == phasePaused {
		overlay = &fieldOverlay{
			Title:  "PAUSED",
			Lines:  []string{fmt.Sprintf("score: %d", m.state.Score)},
			Footer: "press p to resume",
		}
	}

	renderBoardTo(b, m.state, overlay, leftPadStr, &m.canvas)
	b.WriteString("\n")

	if m.viewBuf.Len() == 0 || b.Bytes()[m.viewBuf.Len()-1] != '\n' {
		b.WriteByte('\n')
	}
	return b.String()
}

func renderHUD(s game.State) string {
	sep := styleHudDim.Render("  |  ")

	return strings.Join([]string{
		styleHudLabel.Render("score ") + styleHudScore.Render(fmt.Sprintf("%6d", s.Score)),
		sep,
		styleHudLabel.Render("length ") + styleHudValue.Render(fmt.Sprintf("%3d", s.Length())),
		sep,
		styleHudLabel.Render("level ") + styleHudValue.Render(fmt.Sprintf("%2d", s.Level)),
		sep,
		styleHudLabel.Render("delay ") + styleHudValue.Render(fmt.Sprintf("%3d ms", s.Delay.Milliseconds())),
	}, "")
}

type fieldOverlay struct {
	Title  string
	Lines  []string
	Footer string
}

// ===== Render helpers (cached styles) =====

var (
	styleBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	styleHead   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleBody   = lipgloss.NewStyle().Foreground(lipgloss.Color("#40c463"))
	styleFruit  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff7b72"))

	borderCell = styleBorder.Render("#")
	headCell   = styleHead.Render("O")
	bodyCell   = styleBody.Render("o")
	fruitCell  = styleFruit.Render("F")
	emptyCell  = " "

	styleHudLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleHudValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleHudScore = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleHudDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))

	styleOverlayBorder = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#30363d"))
	styleOverlayTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleOverlayText   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d7de"))
	stylePanel         = lipgloss.NewStyle().Background(lipgloss.Color("#161b22"))

	overlayHLine = styleOverlayBorder.Render("─")
	overlayVLine = styleOverlayBorder.Render("│")
	overlayTL    = styleOverlayBorder.Render("╭")
	overlayTR    = styleOverlayBorder.Render("╮")
	overlayBL    = styleOverlayBorder.Render("╰")
	overlayBR    = styleOverlayBorder.Render("╯")

	panelCell = stylePanel.Render(" ")
)

type canvasBuf struct {
	w     int
	h     int
	cells []string // flat: y*w + x
}

func (c *canvasBuf) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		c.w = 0
		c.h = 0
		c.cells = nil
		return
	}
	n := w * h
	if c.w == w && c.h == h && cap(c.cells) >= n {
		c.cells = c.cells[:n]
		return
	}
	c.w = w
	c.h = h
	c.cells = make([]string, n)
}

func (c *canvasBuf) Fill(cell string) {
	for i := range c.cells {
		c.cells[i] = cell
	}
}

func (c *canvasBuf) Set(x, y int, cell string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell
}

// renderBoardTo paints the bordered board into the canvas and blits it to
// out, one canvas row per line. The board interior is offset by one cell
// for the border ring.
func renderBoardTo(out *bytes.Buffer, s game.State, overlay *fieldOverlay, leftPad string, canvas *canvasBuf) {
	w := s.Width + 2
	h := s.Height + 2
	if w <= 2 || h <= 2 {
		return
	}

	canvas.Resize(w, h)
	canvas.Fill(emptyCell)

	// Border ring.
	for x := 0; x < w; x++ {
		canvas.Set(x, 0, borderCell)
		canvas.Set(x, h-1, borderCell)
	}
	for y := 1; y < h-1; y++ {
		canvas.Set(0, y, borderCell)
		canvas.Set(w-1, y, borderCell)
	}

	// Body first, fruit over body, head over everything. The fruit-over-
	// body case only occurs when placement retries ran out on a near-full
	// board and the fruit stayed under the snake.
	for i := 1; i < len(s.Snake); i++ {
		canvas.Set(s.Snake[i].X+1, s.Snake[i].Y+1, bodyCell)
	}
	canvas.Set(s.Fruit.X+1, s.Fruit.Y+1, fruitCell)
	if len(s.Snake) > 0 {
		canvas.Set(s.Snake[0].X+1, s.Snake[0].Y+1, headCell)
	}

	if overlay != nil {
		applyOverlay(canvas, overlay)
	}

	for y := 0; y < h; y++ {
		if leftPad != "" {
			out.WriteString(leftPad)
		}
		rowOff := y * w
		for x := 0; x < w; x++ {
			out.WriteString(canvas.cells[rowOff+x])
		}
		out.WriteByte('\n')
	}
}

func applyOverlay(canvas *canvasBuf, ov *fieldOverlay) {
	w := canvas.w
	h := canvas.h
	if w == 0 || h == 0 {
		return
	}

	lines := make([]string, 0, 2+len(ov.Lines))
	if ov.Title != "" {
		lines = append(lines, ov.Title)
	}
	lines = append(lines, ov.Lines...)
	if ov.Footer != "" {
		lines = append(lines, ov.Footer)
	}

	innerW := 0
	for _, s := range lines {
		if len(s) > innerW {
			innerW = len(s)
		}
	}
	innerH := len(lines)

	// 1 border + 1 padding on each side.
	boxW := innerW + 4
	boxH := innerH + 4
	if boxW > w {
		boxW = w
	}
	if boxH > h {
		boxH = h
	}

	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	// Fill panel background.
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			canvas.Set(x, y, panelCell)
		}
	}

	// Borders (box drawing for a cuter look).
	for x := x0 + 1; x < x0+boxW-1; x++ {
		canvas.Set(x, y0, overlayHLine)
		canvas.Set(x, y0+boxH-1, overlayHLine)
	}
	for y := y0 + 1; y < y0+boxH-1; y++ {
		canvas.Set(x0, y, overlayVLine)
		canvas.Set(x0+boxW-1, y, overlayVLine)
	}
	canvas.Set(x0, y0, overlayTL)
	canvas.Set(x0+boxW-1, y0, overlayTR)
	canvas.Set(x0, y0+boxH-1, overlayBL)
	canvas.Set(x0+boxW-1, y0+boxH-1, overlayBR)

	// Text placement inside: 1 border + 1 padding.
	tx0 := x0 + 2
	ty0 := y0 + 2

	for i, line := range lines {
		y := ty0 + i
		if y >= y0+boxH-2 {
			break
		}
		// Center within inner width.
		if len(line) > innerW {
			line = line[:innerW]
		}
		startX := tx0 + (innerW-len(line))/2

		var st lipgloss.Style
		switch {
		case i == 0 && ov.Title != "":
			st = styleOverlayTitle
		case i == len(lines)-1 && ov.Footer != "":
			st = styleHudLabel
		default:
			st = styleOverlayText
		}

		for j := 0; j < len(line); j++ {
			x := startX + j
			if x >= x0+boxW-2 {
				break
			}
			canvas.Set(x, y, stylePanel.Foreground(st.GetForeground()).Render(string(line[j])))
		}
	}
}
