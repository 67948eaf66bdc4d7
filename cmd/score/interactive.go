package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	algoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var algorithms = []string{"jaro", "jarowinkler", "indel"}

type scoreModel struct {
	cfg      Config
	err      error
	result   string
	inputs   []textinput.Model
	selected int
	focusIdx int
}

type scoredMsg struct {
	err    error
	result string
}

func newScoreModel(cfg Config) *scoreModel {
	labels := []string{"pattern", "candidate"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Prompt = label + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}

	selected := 0
	for i, name := range algorithms {
		if name == cfg.Algorithm {
			selected = i
		}
	}

	return &scoreModel{cfg: cfg, inputs: inputs, selected: selected}
}

func (m *scoreModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *scoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "left":
			if m.selected > 0 {
				m.selected--
			}
			m.result = ""
			m.err = nil

		case "right":
			if m.selected < len(algorithms)-1 {
				m.selected++
			}
			m.result = ""
			m.err = nil

		case "tab":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			m.inputs[m.focusIdx].Focus()

		case "enter":
			return m, m.score
		}

	case scoredMsg:
		m.result = msg.result
		m.err = msg.err
		return m, nil
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *scoreModel) score() tea.Msg {
	cfg := m.cfg
	cfg.Algorithm = algorithms[m.selected]

	score, err := runOnce(cfg, m.inputs[0].Value(), m.inputs[1].Value())
	if err != nil {
		return scoredMsg{err: err}
	}
	return scoredMsg{result: fmt.Sprintf("%.6f", score)}
}

func (m *scoreModel) View() string {
	s := titleStyle.Render("scorer-runtime") + "\n\n"

	s += "algorithm: "
	for i, name := range algorithms {
		if i == m.selected {
			s += selectedStyle.Render(" "+name+" ") + " "
		} else {
			s += algoStyle.Render(name) + " "
		}
	}
	s += "\n\n"

	for i := range m.inputs {
		s += m.inputs[i].View() + "\n"
	}

	if m.err != nil {
		s += "\n" + errorStyle.Render(m.err.Error()) + "\n"
	} else if m.result != "" {
		s += "\n" + resultStyle.Render("score: "+m.result) + "\n"
	}

	s += "\n" + helpStyle.Render("enter: score • tab: switch field • ←/→: algorithm • esc: quit")
	return s
}

func runInteractive(cfg Config) error {
	p := tea.NewProgram(newScoreModel(cfg))
	_, err := p.Run()
	return err
}
