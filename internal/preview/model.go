// Package preview is a terminal viewer that draws a path and its offset in
// braille and lets the distance and join style be changed interactively.
package preview

import (
	"fmt"
	"strconv"
	"strings"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vasalvit/svgoffset"
)

var joinCycle = []svgoffset.JoinType{svgoffset.JoinSquare, svgoffset.JoinBevel, svgoffset.JoinRound, svgoffset.JoinMiter}

var endCycle = []svgoffset.EndType{svgoffset.EndPolygon, svgoffset.EndJoined, svgoffset.EndButt, svgoffset.EndSquare, svgoffset.EndRound}

// Model is the bubbletea model of the viewer.
type Model struct {
	width  int
	height int

	d      string
	params svgoffset.Params
	opts   []svgoffset.Option

	in     textinput.Model
	source svgoffset.Ring
	result *svgoffset.Result
	err    error
	status string
}

// New returns a viewer for path d offset with p.
func New(d string, p svgoffset.Params, opts ...svgoffset.Option) Model {
	m := Model{d: d, params: p, opts: opts}
	m.in = textinput.New()
	m.in.Prompt = "distance: "
	m.in.Placeholder = "signed offset"
	m.in.CharLimit = 24
	m.in.Width = 16
	m.in.SetValue(strconv.FormatFloat(p.Distance, 'g', -1, 64))
	m.in.Focus()
	m.recompute()
	return m
}

// Run opens the viewer full screen and blocks until it is closed.
func Run(d string, p svgoffset.Params, opts ...svgoffset.Option) error {
	_, err := tea.NewProgram(New(d, p, opts...), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.params.Join = next(joinCycle, m.params.Join)
			m.recompute()
			return m, nil
		case "shift+tab":
			m.params.End = next(endCycle, m.params.End)
			m.recompute()
			return m, nil
		case "enter":
			v, err := strconv.ParseFloat(strings.TrimSpace(m.in.Value()), 64)
			if err != nil {
				m.status = "distance: " + err.Error()
				return m, nil
			}
			m.params.Distance = v
			m.recompute()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.in, cmd = m.in.Update(msg)
	return m, cmd
}

// recompute runs the offset with the current parameters.
func (m *Model) recompute() {
	m.result, m.err = svgoffset.Offset(m.d, m.params, m.opts...)
	switch {
	case m.err != nil:
		m.status = m.err.Error()
	case m.result.Unchanged:
		m.source, m.err = svgoffset.BuildRing(m.d, m.opts...)
		m.status = "distance below minimum, path unchanged"
	case m.result.Deflated():
		m.source = m.result.Source
		m.status = "path deflated away"
	default:
		m.source = m.result.Source
		m.status = fmt.Sprintf("%d ring(s)", len(m.result.Rings))
	}
}

func (m Model) rings() svgoffset.RingSet {
	if m.err != nil || m.result == nil {
		return nil
	}
	if m.result.Unchanged {
		return svgoffset.RingSet{m.source}
	}
	return m.result.Rings
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" svgoffset ─ offset preview ")

	canvasW := max(8, m.width-2)
	canvasH := max(4, m.height-5)
	canvas := boxStyle.Render(renderRings(m.source, m.rings(), canvasW, canvasH))

	info := fmt.Sprintf("join: %s  end: %s  ", m.params.Join, m.params.End)
	status := dimStyle.Render(m.status)
	if m.err != nil {
		status = errorStyle.Render(m.status)
	}
	footer := lipgloss.JoinHorizontal(lipgloss.Top, m.in.View(), "  ", info, status)
	help := dimStyle.Render("enter apply · tab join · shift+tab end · esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer, help)
}

func next[T comparable](cycle []T, cur T) T {
	for i, v := range cycle {
		if v == cur {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
