package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortsim/internal/analytics"
	"github.com/san-kum/sortsim/internal/config"
	"github.com/san-kum/sortsim/internal/sorting"
)

const (
	screenAlgorithms = iota
	screenParams
)

// Status is the outcome of the previous run, shown under the menu.
type Status struct {
	Text string
	Err  bool
}

// MenuResult is what the user picked. Start is false when they quit.
type MenuResult struct {
	Config config.Config
	Start  bool
}

type param struct {
	name string
	step int
	min  int
	max  int
	get  func(*config.Config) int
	set  func(*config.Config, int)
}

var menuParams = []param{
	{
		name: "quantity", step: 1, min: config.MinQuantity, max: config.MaxQuantity,
		get: func(c *config.Config) int { return c.Quantity },
		set: func(c *config.Config, v int) { c.Quantity = v },
	},
	{
		name: "tick ms", step: 10, min: int(config.MinTick.Milliseconds()), max: int(config.MaxTick.Milliseconds()),
		get: func(c *config.Config) int { return c.TickMs },
		set: func(c *config.Config, v int) { c.TickMs = v },
	},
	{
		name: "final ms", step: 500, min: 0, max: 60000,
		get: func(c *config.Config) int { return c.FinalDelayMs },
		set: func(c *config.Config, v int) { c.FinalDelayMs = v },
	},
	{
		name: "seed", step: 1, min: 0, max: 1 << 30,
		get: func(c *config.Config) int { return int(c.Seed) },
		set: func(c *config.Config, v int) { c.Seed = int64(v) },
	},
}

func (p param) clamp(v int) int {
	if v < p.min {
		return p.min
	}
	if v > p.max {
		return p.max
	}
	return v
}

type menuModel struct {
	screen      int
	cursor      int
	algorithms  []sorting.Algorithm
	cfg         config.Config
	paramCursor int
	editing     bool
	input       textinput.Model
	keys        menuKeys
	help        help.Model
	styles      Styles
	status      Status
	start       bool
}

func newMenuModel(cfg config.Config, status Status) menuModel {
	ti := textinput.New()
	ti.CharLimit = 10
	ti.Width = 10
	ti.Validate = func(s string) error {
		for _, c := range s {
			if c < '0' || c > '9' {
				return fmt.Errorf("not a number")
			}
		}
		return nil
	}

	m := menuModel{
		algorithms: sorting.Algorithms(),
		cfg:        cfg,
		input:      ti,
		keys:       defaultMenuKeys,
		help:       help.New(),
		styles:     NewStyles(GetTheme(cfg.Theme)),
		status:     status,
	}
	if algo, err := cfg.AlgorithmID(); err == nil {
		for i, a := range m.algorithms {
			if a == algo {
				m.cursor = i
			}
		}
	}
	return m
}

// RunMenu shows the algorithm picker seeded from cfg and returns the choice.
func RunMenu(cfg config.Config, status Status, opts ...tea.ProgramOption) (MenuResult, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(newMenuModel(cfg, status), opts...).Run()
	if err != nil {
		return MenuResult{}, err
	}
	m := final.(menuModel)
	return MenuResult{Config: m.cfg, Start: m.start}, nil
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		if m.screen == screenParams {
			return m.paramKey(msg)
		}
		return m.menuKey(msg)
	}
	return m, nil
}

func (m menuModel) menuKey(msg tea.KeyMsg) (menuModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.algorithms)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.cfg.Algorithm = m.algorithms[m.cursor].Name()
		m.screen, m.paramCursor = screenParams, 0
		m.status = Status{}
	}
	return m, nil
}

func (m menuModel) paramKey(msg tea.KeyMsg) (menuModel, tea.Cmd) {
	p := menuParams[m.paramCursor]
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenAlgorithms
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.paramCursor < len(menuParams)-1 {
			m.paramCursor++
		}
	case key.Matches(msg, m.keys.Left):
		p.set(&m.cfg, p.clamp(p.get(&m.cfg)-p.step))
	case key.Matches(msg, m.keys.Right):
		p.set(&m.cfg, p.clamp(p.get(&m.cfg)+p.step))
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Select):
		m.editing = true
		m.input.SetValue(strconv.Itoa(p.get(&m.cfg)))
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Start):
		if err := m.cfg.Validate(); err != nil {
			m.status = Status{Text: err.Error(), Err: true}
			return m, nil
		}
		m.start = true
		return m, tea.Quit
	}
	return m, nil
}

func (m menuModel) editKey(msg tea.KeyMsg) (menuModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		p := menuParams[m.paramCursor]
		v, err := strconv.Atoi(m.input.Value())
		if err != nil {
			m.status = Status{Text: fmt.Sprintf("%s: not a number", p.name), Err: true}
		} else {
			p.set(&m.cfg, p.clamp(v))
			m.status = Status{}
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m menuModel) View() string {
	var b strings.Builder
	b.WriteString("\n\n    " + GradientText("SORTSIM", sorting.Bogo, sorting.Merge) + "\n")
	b.WriteString("    " + m.styles.Muted.Render("sorting algorithm visualizer") + "\n")
	b.WriteString("    " + Separator(28, m.styles) + "\n\n")

	if m.screen == screenParams {
		m.viewParams(&b)
	} else {
		m.viewAlgorithms(&b)
	}

	if m.status.Text != "" {
		style := m.styles.Success
		if m.status.Err {
			style = m.styles.Error
		}
		b.WriteString("\n    " + style.Render(m.status.Text) + "\n")
	}

	b.WriteString("\n    ")
	if m.screen == screenParams {
		b.WriteString(m.help.View(configHelp{m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")
	return b.String()
}

func (m menuModel) viewAlgorithms(b *strings.Builder) {
	for i, algo := range m.algorithms {
		name := fmt.Sprintf("%-16s", algo.String())
		desc := fmt.Sprintf("%-12s worst %s", strings.ToLower(algo.CountKind().String()), analytics.For(algo).Worst)
		if i == m.cursor {
			b.WriteString("    " + m.styles.Cursor.Render("▸") + " " + AlgorithmStyle(algo).Bold(true).Render(name) + "  " + m.styles.Value.Render(desc) + "\n")
		} else {
			b.WriteString("      " + m.styles.Muted.Render(name) + "  " + m.styles.Muted.Render(desc) + "\n")
		}
	}
}

func (m menuModel) viewParams(b *strings.Builder) {
	algo, _ := sorting.ParseAlgorithm(m.cfg.Algorithm)
	b.WriteString("    " + AlgorithmStyle(algo).Bold(true).Render(strings.ToUpper(algo.String())) + "\n\n")
	for i, p := range menuParams {
		val := fmt.Sprintf("%8d", p.get(&m.cfg))
		if m.editing && i == m.paramCursor {
			val = m.input.View()
		}
		if i == m.paramCursor {
			b.WriteString("    " + m.styles.Cursor.Render("▸") + " " + m.styles.Title.Render(fmt.Sprintf("%-10s", p.name)) + " " + m.styles.Value.Render(val) + "\n")
		} else {
			b.WriteString("      " + m.styles.Muted.Render(fmt.Sprintf("%-10s", p.name)) + " " + m.styles.Muted.Render(val) + "\n")
		}
	}
}
