// Package tui implements the interactive form: a token input field, an
// analyze action and a scrollable read-only result panel. All classification
// goes through the classifier package so the form and the CLI can never
// drift apart on the rules.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hawkeyes-osint/pushtoken/internal/classifier"
	"github.com/hawkeyes-osint/pushtoken/internal/render"
	"github.com/hawkeyes-osint/pushtoken/internal/version"
)

// Theme colors carried over from the original desktop form.
const (
	colorAccent = lipgloss.Color("#1e90ff")
	colorResult = lipgloss.Color("#00ff99")
	colorFaint  = lipgloss.Color("#6c7380")
)

// Options carries the presentation settings for the form.
type Options struct {
	Website      string
	SupportEmail string
	NoColor      bool
}

type keyMap struct {
	Analyze key.Binding
	Clear   key.Binding
	Focus   key.Binding
	Website key.Binding
	Support key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Analyze, k.Clear, k.Focus, k.Website, k.Support, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Analyze, k.Clear, k.Focus},
		{k.Website, k.Support, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Analyze: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "analyze"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Website: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "website"),
		),
		Support: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "support"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

type styles struct {
	title   lipgloss.Style
	tagline lipgloss.Style
	input   lipgloss.Style
	results lipgloss.Style
	result  lipgloss.Style
	label   lipgloss.Style
	errText lipgloss.Style
	link    lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
		return styles{
			title:   lipgloss.NewStyle().Bold(true),
			tagline: lipgloss.NewStyle(),
			input:   box,
			results: box,
			result:  lipgloss.NewStyle(),
			label:   lipgloss.NewStyle().Bold(true),
			errText: lipgloss.NewStyle().Bold(true),
			link:    lipgloss.NewStyle().Underline(true),
		}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		tagline: lipgloss.NewStyle().Foreground(colorFaint),
		input:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1),
		results: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFaint).Padding(0, 1),
		result:  lipgloss.NewStyle().Foreground(colorResult),
		label:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		errText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f")),
		link:    lipgloss.NewStyle().Foreground(colorAccent).Underline(true),
	}
}

type openedMsg struct{ err error }

// Model is the bubbletea model for the interactive form.
type Model struct {
	input   textinput.Model
	results viewport.Model
	help    help.Model
	keys    keyMap
	styles  styles
	opts    Options
	status  string
	width   int
}

// NewModel builds the form with an empty input and result panel.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Paste a push token"
	ti.Prompt = "> "
	ti.Focus()

	vp := viewport.New(76, 12)
	vp.SetContent("Enter a token and press enter to analyze it.")

	return Model{
		input:   ti,
		results: vp,
		help:    help.New(),
		keys:    defaultKeyMap(),
		styles:  newStyles(opts.NoColor),
		opts:    opts,
		width:   80,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 8
		m.results.Width = msg.Width - 4
		m.results.Height = msg.Height - 12
		if m.results.Height < 4 {
			m.results.Height = 4
		}
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.status = "Could not open link: " + msg.err.Error()
		} else {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Analyze):
			m.analyze()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.input.SetValue("")
			m.results.SetContent("Enter a token and press enter to analyze it.")
			m.status = ""
			return m, nil

		case key.Matches(msg, m.keys.Focus):
			if m.input.Focused() {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, nil

		case key.Matches(msg, m.keys.Website):
			return m, openCmd(m.opts.Website)

		case key.Matches(msg, m.keys.Support):
			return m, openCmd("mailto:" + m.opts.SupportEmail)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.input.Focused() {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.results, cmd = m.results.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// analyze classifies the current input and fills the result panel.
func (m *Model) analyze() {
	res, err := classifier.Classify(m.input.Value())
	if err != nil {
		m.results.SetContent(m.styles.errText.Render("Error: " + render.ErrorMessage))
		m.results.GotoTop()
		return
	}

	var b strings.Builder
	writeField := func(label, value string) {
		b.WriteString(m.styles.label.Render(label+":") + " " + m.styles.result.Render(value) + "\n")
	}

	writeField("Provider", res.Provider)
	writeField("Platform", res.Platform)
	writeField("Environment", res.Environment)
	writeField("Token Type", res.TokenType)
	writeField("Token Length", fmt.Sprintf("%d characters", res.TokenLength))
	writeField("Confidence", string(res.Confidence))

	if notes := render.FilterEmpty(res.Characteristics); len(notes) > 0 {
		b.WriteString("\n" + m.styles.label.Render("Characteristics:") + "\n")
		for _, note := range notes {
			b.WriteString(m.styles.result.Render("  - "+note) + "\n")
		}
	}

	m.results.SetContent(b.String())
	m.results.GotoTop()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Push Token Analyzer") + "\n")
	b.WriteString(m.styles.tagline.Render("HawkEyes OSINT · v"+version.GetShortVersion()) + "\n\n")
	b.WriteString(m.styles.input.Render(m.input.View()) + "\n")
	b.WriteString(m.styles.results.Render(m.results.View()) + "\n")

	links := m.styles.link.Render(m.opts.Website) + "  " + m.styles.link.Render(m.opts.SupportEmail)
	b.WriteString(links + "\n")

	if m.status != "" {
		b.WriteString(m.styles.errText.Render(m.status) + "\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the form in the alternate screen and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive form failed: %w", err)
	}
	return nil
}
