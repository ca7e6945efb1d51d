package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog/log"

	"github.com/san-kum/bytelens/internal/analysis"
	"github.com/san-kum/bytelens/internal/scheme"
	"github.com/san-kum/bytelens/internal/session"
)

const (
	defaultCols = 80
	defaultRows = 24

	// profileBlocks is the number of points in the entropy plot.
	profileBlocks = 64
)

// Model is the bubbletea model. The session is shared and mutated in place.
type Model struct {
	sess      *session.Session
	theme     Theme
	styles    styles
	cols      int
	rows      int
	showPanel bool
	showHelp  bool
	profile   []float64
	err       error
}

func NewModel(sess *session.Session, theme Theme) Model {
	m := Model{
		sess:      sess,
		theme:     theme,
		styles:    newStyles(theme),
		showPanel: true,
		profile:   entropyProfile(sess.File.Data),
	}
	m.fit(defaultCols, defaultRows)
	m.sess.Redraw()
	return m
}

func entropyProfile(data []byte) []float64 {
	if len(data) == 0 {
		return nil
	}
	block := len(data) / profileBlocks
	if block < 1 {
		block = 1
	}
	return analysis.EntropyProfile(data, block)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.sess.Apply(session.ScrollDown)
		case tea.MouseButtonWheelUp:
			m.sess.Apply(session.ScrollUp)
		}
	case tea.WindowSizeMsg:
		m.fit(msg.Width, msg.Height)
	}
	m.sess.Redraw()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "t":
		m.theme = nextTheme(m.theme)
		m.styles = newStyles(m.theme)
		return m, nil
	case "p":
		m.showPanel = !m.showPanel
		m.fit(m.cols, m.rows)
		m.sess.Redraw()
		return m, nil
	}

	if m.showHelp && key == "esc" {
		m.showHelp = false
		return m, nil
	}

	action, ok := ActionForKey(key)
	if !ok {
		return m, nil
	}
	if m.sess.Apply(action) {
		return m, tea.Quit
	}
	m.sess.Redraw()
	return m, nil
}

// fit sizes the canvas to the terminal: two pixel rows per text row, one
// row kept for the footer.
func (m *Model) fit(cols, rows int) {
	m.cols, m.rows = cols, rows
	w := cols
	if m.showPanel {
		w -= panelWidth + 1
	}
	h := (rows - 1) * 2
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}
	if err := m.sess.Resize(w, h); err != nil {
		m.err = err
		log.Error().Err(err).Msg("resize failed")
	}
}

func (m Model) View() string {
	canvas := RenderHalfBlocks(m.sess.Canvas, m.theme.Empty)
	body := canvas
	if m.showPanel {
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvas, m.panel())
	}
	if m.showHelp {
		body = lipgloss.Place(m.cols, m.rows-1, lipgloss.Center, lipgloss.Center, m.styles.help.Render(helpText))
	}
	return body + "\n" + m.footer()
}

func (m Model) panel() string {
	st := m.sess.Status()
	s := m.styles

	var b strings.Builder
	b.WriteString(s.title.Render(st.Name) + "\n")

	row := func(label, value string) {
		b.WriteString(s.label.Render(label) + s.value.Render(value) + "\n")
	}
	row("size", fmt.Sprintf("%d bytes", st.Size))
	row("offset", fmt.Sprintf("%d + %d", st.Offset, st.OffsetFine))
	row("width", fmt.Sprintf("%d", st.RowWidth))
	row("stride", fmt.Sprintf("%d", st.Stride))
	row("zoom", fmt.Sprintf("%dx", st.Zoom))
	row("canvas", st.Canvas)
	row("entropy", fmt.Sprintf("%.3f bits", st.Entropy))

	b.WriteString("\n" + s.progress.Render(ProgressBar(st.Progress, panelWidth-8)))
	b.WriteString(s.value.Render(fmt.Sprintf(" %3.0f%%", st.Progress*100)) + "\n\n")

	b.WriteString(s.muted.Render("SCHEME") + "\n")
	for _, sc := range scheme.All() {
		if sc == m.sess.Settings.Scheme {
			b.WriteString(s.active.Render("> "+sc.String()) + "\n")
		} else {
			b.WriteString(s.label.Render("  "+sc.String()) + "\n")
		}
	}

	if len(m.profile) > 1 {
		plot := asciigraph.Plot(m.profile,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-10),
			asciigraph.Caption("entropy"))
		b.WriteString("\n" + s.graph.Render(plot) + "\n")
	}

	b.WriteString("\n" + s.muted.Render(Separator(panelWidth-2)))
	return s.panel.Render(b.String())
}

func (m Model) footer() string {
	if m.err != nil {
		return m.styles.active.Render(m.err.Error())
	}
	return m.styles.muted.Render("q quit  ? help  c scheme  +/- zoom  j/k scroll  [/] width  t theme")
}

// Run starts the full-screen program and blocks until the user quits.
func Run(sess *session.Session, theme Theme) error {
	p := tea.NewProgram(NewModel(sess, theme), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
