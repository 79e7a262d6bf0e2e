package viz

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/collatz/internal/collatz"
	"github.com/san-kum/collatz/internal/config"
	"github.com/san-kum/collatz/internal/export"
	"github.com/san-kum/collatz/internal/playback"
)

const (
	InfoURL = "https://en.wikipedia.org/wiki/Collatz_conjecture"

	leftWidth    = 34
	overviewRows = 4
	// header line + number line
	topRows = 2
	// status line + help line
	footerRows = 2
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarning
	statusError
)

type Options struct {
	Config   *config.Config
	Theme    Theme
	Autoplay bool
	Rand     *rand.Rand
}

// App is the Bubble Tea model. It owns no playback state of its own: every
// render reads the last snapshot delivered by the controller.
type App struct {
	cfg   *config.Config
	ctrl  *playback.Controller
	sched *teaScheduler
	rng   *rand.Rand

	snap      playback.Snapshot
	stats     collatz.Stats
	truncated bool

	theme  Theme
	styles styles
	input  textinput.Model
	list   viewport.Model
	bar    progress.Model
	help   help.Model

	editing    bool
	status     string
	statusKind statusKind

	width, height int
}

func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = GetTheme(cfg.Theme)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	input := textinput.New()
	input.Placeholder = "positive integer"
	input.CharLimit = 19
	input.Width = 20
	input.SetValue(strconv.FormatInt(cfg.Start, 10))

	m := &App{
		cfg:    cfg,
		sched:  newTeaScheduler(),
		rng:    rng,
		theme:  theme,
		styles: newStyles(theme),
		input:  input,
		list:   viewport.New(leftWidth-2, 10),
		bar:    newBar(theme),
		help:   help.New(),
		width:  120,
		height: 40,
	}
	m.ctrl = playback.New(m.sched,
		playback.WithInterval(cfg.IntervalMs),
		playback.WithScaleMode(cfg.ScaleMode()),
		playback.WithListener(m.onChange),
	)
	m.snap = m.ctrl.Snapshot()

	m.generate(cfg.Start)
	if opts.Autoplay {
		m.report(m.ctrl.Play())
	}
	m.layout()
	return m
}

func newBar(t Theme) progress.Model {
	return progress.New(
		progress.WithGradient(string(t.Primary), string(t.Secondary)),
		progress.WithWidth(leftWidth-2),
	)
}

// Run starts the interactive program.
func Run(opts Options) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m *App) Init() tea.Cmd {
	return m.sched.drain()
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case TickMsg:
		m.sched.fire(msg.ID)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.KeyMsg:
		if m.editing {
			cmd = m.editKey(msg)
		} else {
			cmd = m.handleKey(msg)
		}
	}
	return m, tea.Batch(cmd, m.sched.drain())
}

func (m *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		m.ctrl.Pause()
		return tea.Quit
	case key.Matches(msg, keys.Play):
		m.report(m.ctrl.Toggle())
	case key.Matches(msg, keys.Reset):
		m.report(m.ctrl.Reset())
	case key.Matches(msg, keys.Prev):
		m.report(m.ctrl.Step(-1))
	case key.Matches(msg, keys.Next):
		m.report(m.ctrl.Step(1))
	case key.Matches(msg, keys.First):
		m.report(m.ctrl.SeekToStep(0))
	case key.Matches(msg, keys.Last):
		m.report(m.ctrl.SeekToStep(m.snap.Sequence.Len() - 1))
	case key.Matches(msg, keys.Faster):
		m.report(m.ctrl.SetStepIntervalMs(config.ClampInterval(m.snap.IntervalMs * 4 / 5)))
	case key.Matches(msg, keys.Slower):
		m.report(m.ctrl.SetStepIntervalMs(config.ClampInterval(m.snap.IntervalMs*5/4 + 1)))
	case key.Matches(msg, keys.Scale):
		m.ctrl.ToggleScale()
	case key.Matches(msg, keys.Edit):
		m.editing = true
		m.input.CursorEnd()
		return m.input.Focus()
	case key.Matches(msg, keys.Random):
		n := collatz.Random(m.rng)
		m.input.SetValue(strconv.FormatInt(n, 10))
		m.generate(n)
	case key.Matches(msg, keys.Generate):
		m.submit()
	case key.Matches(msg, keys.CSV):
		m.export(export.CSV)
	case key.Matches(msg, keys.JSON):
		m.export(export.JSON)
	case key.Matches(msg, keys.Chart):
		m.export(export.SVG)
	case key.Matches(msg, keys.Theme):
		m.setTheme(NextTheme(m.theme))
	case key.Matches(msg, keys.Info):
		m.setStatus(statusInfo, "read more: "+InfoURL)
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return cmd
	}
	return nil
}

func (m *App) editKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Generate):
		m.editing = false
		m.input.Blur()
		m.submit()
		return nil
	case key.Matches(msg, keys.Cancel):
		m.editing = false
		m.input.Blur()
		m.input.SetValue(strconv.FormatInt(m.snap.Sequence.Start(), 10))
		return nil
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submit parses the number field and generates its sequence.
func (m *App) submit() {
	raw := strings.ReplaceAll(strings.TrimSpace(m.input.Value()), ",", "")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		m.setStatus(statusError, "invalid input: please enter an integer")
		return
	}
	m.generate(n)
}

func (m *App) generate(n int64) {
	seq, truncated, err := collatz.Compute(n, m.cfg.Cap)
	if err != nil {
		log.Printf("compute %d failed: %v", n, err)
		if errors.Is(err, collatz.ErrInvalidInput) {
			m.setStatus(statusError, "please enter a positive integer")
		} else {
			m.setStatus(statusError, err.Error())
		}
		return
	}

	m.stats = collatz.ComputeStats(seq)
	m.truncated = truncated
	if err := m.ctrl.Load(seq); err != nil {
		m.setStatus(statusError, err.Error())
		return
	}
	log.Printf("generated sequence start=%d len=%d max=%d truncated=%v", n, seq.Len(), m.stats.Max, truncated)

	if truncated {
		m.setStatus(statusWarning, fmt.Sprintf("limit reached: the sequence exceeded %d steps and has not yet reached 1", m.cfg.Cap))
	} else {
		m.setStatus(statusInfo, fmt.Sprintf("generated N = %s", groupDigits(n)))
	}
	m.layout()
}

func (m *App) export(f export.Format) {
	seq := m.snap.Sequence
	if seq.IsEmpty() {
		m.setStatus(statusError, "no sequence to export")
		return
	}
	path := filepath.Join(m.cfg.DataDir, export.DefaultFilename(seq, f))
	opts := export.DefaultChartOptions()
	opts.Scale = m.snap.Scale
	opts.Cursor = m.snap.Cursor
	if err := export.WriteFile(path, seq, opts); err != nil {
		log.Printf("export %s failed: %v", path, err)
		m.setStatus(statusError, "export failed: "+err.Error())
		return
	}
	log.Printf("exported %s", path)
	m.setStatus(statusInfo, "saved "+path)
}

func (m *App) setTheme(t Theme) {
	m.theme = t
	m.styles = newStyles(t)
	m.bar = newBar(t)
	m.list.SetContent(m.listContent())
}

func (m *App) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, playback.ErrNoSequence):
		m.setStatus(statusWarning, "generate a sequence first")
	default:
		m.setStatus(statusError, err.Error())
	}
}

func (m *App) setStatus(kind statusKind, s string) {
	m.statusKind, m.status = kind, s
}

// onChange is the controller listener.
func (m *App) onChange(s playback.Snapshot) {
	m.snap = s
	m.list.SetContent(m.listContent())
	m.follow()
}

// follow scrolls the list so the cursor row is visible.
func (m *App) follow() {
	c := m.snap.Cursor
	switch {
	case c < m.list.YOffset:
		m.list.SetYOffset(c)
	case c >= m.list.YOffset+m.list.Height:
		m.list.SetYOffset(c - m.list.Height + 1)
	}
}

func (m *App) layout() {
	used := topRows + footerRows + lipgloss.Height(m.statsPanel()) + lipgloss.Height(m.progressPanel()) + 3
	if m.help.ShowAll {
		used += 5
	}
	h := m.height - used
	if h < 5 {
		h = 5
	}
	m.list.Width = leftWidth - 2
	m.list.Height = h
	m.follow()
}

func (m *App) chartWidth() int {
	w := m.width - (leftWidth + 2) - 2
	if w < 40 {
		w = 40
	}
	return w
}

func (m *App) chartHeight() int {
	h := m.height - topRows - footerRows - (overviewRows + 3) - 5
	if h > 20 {
		h = 20
	}
	if h < 6 {
		h = 6
	}
	return h
}

// listRowTop is the screen row of the first visible list line.
func (m *App) listRowTop() int {
	return topRows + lipgloss.Height(m.statsPanel()) + lipgloss.Height(m.progressPanel()) + 2
}

// overviewOrigin is the screen cell of the overview canvas' top-left.
func (m *App) overviewOrigin() (x, y int) {
	return leftWidth + 2 + 2, topRows + lipgloss.Height(m.chartPanel()) + 2
}

// handleMouse maps clicks on the list or the overview back to a step.
func (m *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return cmd
	}
	if idx, ok := m.stepAt(msg.X, msg.Y); ok {
		m.report(m.ctrl.SeekToStep(idx))
	}
	return nil
}

func (m *App) stepAt(x, y int) (int, bool) {
	n := m.snap.Sequence.Len()
	if n == 0 {
		return 0, false
	}

	if x < leftWidth+2 {
		top := m.listRowTop()
		if y < top || y >= top+m.list.Height {
			return 0, false
		}
		line := m.list.YOffset + (y - top)
		if line >= n {
			return 0, false
		}
		return line, true
	}

	ox, oy := m.overviewOrigin()
	width := m.chartWidth() - 2
	if y < oy || y >= oy+overviewRows || x < ox || x >= ox+width {
		return 0, false
	}
	return OverviewStep(x-ox, n, width), true
}

func (m *App) View() string {
	header := GradientText("COLLATZ CONJECTURE", m.theme.Primary, m.theme.Accent) +
		m.styles.hint.Render(fmt.Sprintf("  scale: %s  theme: %s", m.snap.Scale, m.theme.Name))
	left := lipgloss.JoinVertical(lipgloss.Left, m.statsPanel(), m.progressPanel(), m.listPanel())
	right := lipgloss.JoinVertical(lipgloss.Left, m.chartPanel(), m.overviewPanel())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.inputLine(),
		body,
		m.statusLine(),
		m.help.View(keys),
	)
}
