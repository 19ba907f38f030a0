package viz

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortsim/internal/analytics"
	"github.com/san-kum/sortsim/internal/layout"
	"github.com/san-kum/sortsim/internal/sorting"
)

const (
	// header, frame border top and bottom, label row, help
	chromeRows = 5
	// title, four analytics lines, border
	overlayRows = 7
	minRows     = 3

	sizeWait       = 100 * time.Millisecond
	fallbackWidth  = 80
	fallbackHeight = 24
)

type sizeTimeoutMsg struct{}

// runModel shows the frames of one engine run.
type runModel struct {
	frontend  *Frontend
	algorithm sorting.Algorithm
	run       func() (sorting.Count, error)

	keys   runKeys
	help   help.Model
	theme  Theme
	styles Styles

	snap     sorting.Snapshot
	settings layout.Settings
	hasFrame bool

	width, height int

	started   bool
	finished  bool
	cancelled bool
	count     sorting.Count
	err       error
}

func newRunModel(f *Frontend, algo sorting.Algorithm, run func() (sorting.Count, error)) runModel {
	return runModel{
		frontend:  f,
		algorithm: algo,
		run:       run,
		keys:      defaultRunKeys,
		help:      help.New(),
		theme:     f.opts.Theme,
		styles:    NewStyles(f.opts.Theme),
	}
}

// Init waits for the first WindowSizeMsg; the engine needs a width before
// its first frame can be laid out. Bubbletea only reports sizes for terminal
// output, so after sizeWait the run starts at the fallback size instead.
func (m runModel) Init() tea.Cmd {
	return tea.Tick(sizeWait, func(time.Time) tea.Msg { return sizeTimeoutMsg{} })
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.frontend.setSize(msg.Width, msg.Height)
		if !m.started && !m.cancelled {
			m.started = true
			return m, m.start()
		}

	case sizeTimeoutMsg:
		if !m.started && !m.cancelled {
			m.width, m.height = fallbackWidth, fallbackHeight
			m.help.Width = fallbackWidth
			m.frontend.setSize(fallbackWidth, fallbackHeight)
			m.started = true
			return m, m.start()
		}

	case frameMsg:
		m.snap, m.settings, m.hasFrame = msg.snap, msg.settings, true
		close(msg.ack)

	case doneMsg:
		m.finished = true
		m.count, m.err = msg.count, msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			m.frontend.Cancel()
			if !m.started {
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Theme):
			m.theme = NextTheme(m.theme.Name)
			m.styles = NewStyles(m.theme)
		}
	}
	return m, nil
}

func (m runModel) start() tea.Cmd {
	run := m.run
	return func() tea.Msg {
		count, err := run()
		return doneMsg{count: count, err: err}
	}
}

func (m runModel) result() (sorting.Count, error) {
	if m.finished {
		return m.count, m.err
	}
	if m.cancelled {
		return sorting.Count{}, sorting.ErrCancelled
	}
	return sorting.Count{}, ErrFrontendClosed
}

func (m runModel) chartRows() int {
	rows := m.height - chromeRows
	if m.snap.Sorted {
		rows -= overlayRows
	}
	if rows < minRows {
		rows = minRows
	}
	return rows
}

func (m runModel) View() string {
	if m.width == 0 {
		return ""
	}

	algo := m.algorithm
	count := sorting.NewCount(algo.CountKind())
	if m.hasFrame {
		algo, count = m.snap.Algorithm, m.snap.Count
	}
	header := AlgorithmStyle(algo).Bold(true).Render(algo.String()) + "  " + m.styles.Value.Render(count.String())

	if !m.hasFrame || len(m.snap.Data) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.styles.Muted.Render("shuffling..."), m.help.View(m.keys))
	}

	chart := RenderChart(m.snap, m.settings, m.chartRows(), m.styles.Muted)
	parts := []string{header, m.styles.Frame.Render(chart)}
	if m.snap.Sorted {
		parts = append(parts, m.overlay())
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m runModel) overlay() string {
	lines := []string{m.styles.Success.Render("Sorted in " + m.snap.Count.String())}
	for _, l := range analytics.For(m.snap.Algorithm).Lines() {
		lines = append(lines, m.styles.Label.Render(l[0])+m.styles.Value.Render(l[1]))
	}
	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}
