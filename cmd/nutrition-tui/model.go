package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lg/daily-nutrition-go-api/internal/nutrition"
)

type field int

const (
	fieldWeight field = iota
	fieldActivity
)

type model struct {
	form   *nutrition.Form
	weight textinput.Model // Raw weight text; the form keeps the last valid value
	level  int             // Index into nutrition.ActivityLevels
	focus  field
	keys   keyMap
	help   help.Model
}

type keyMap struct {
	NextField key.Binding
	Prev      key.Binding
	Next      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	NextField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "cambiar campo")),
	Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "menos actividad")),
	Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "más actividad")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
	Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "salir")),
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Quit, k.Help}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.NextField, k.Quit},
		{k.Help},
	}
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

func newModel() model {
	form := nutrition.NewForm()

	ti := textinput.New()
	ti.Placeholder = "kg"
	ti.CharLimit = 6
	ti.Width = 8
	ti.SetValue(strconv.FormatFloat(form.WeightKG(), 'f', -1, 64))
	ti.Focus()

	return model{
		form:   form,
		weight: ti,
		level:  levelIndex(form.Activity()),
		focus:  fieldWeight,
		keys:   keys,
		help:   help.New(),
	}
}

func levelIndex(activity float64) int {
	for i, l := range nutrition.ActivityLevels {
		if l.Value == activity {
			return i
		}
	}
	return 0
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextField):
			if m.focus == fieldWeight {
				m.focus = fieldActivity
				m.weight.Blur()
				return m, nil
			}
			m.focus = fieldWeight
			return m, m.weight.Focus()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.focus == fieldActivity {
			switch {
			case key.Matches(msg, m.keys.Prev):
				m.selectLevel(m.level - 1)
			case key.Matches(msg, m.keys.Next):
				m.selectLevel(m.level + 1)
			}
			return m, nil
		}
	}

	// Weight field: every edit goes straight to the form, which ignores text
	// it can't parse.
	var cmd tea.Cmd
	m.weight, cmd = m.weight.Update(msg)
	m.form.SetWeightText(m.weight.Value())
	return m, cmd
}

// selectLevel moves the activity selector, stopping at either end.
func (m *model) selectLevel(i int) {
	if i < 0 || i >= len(nutrition.ActivityLevels) {
		return
	}
	m.level = i
	m.form.SetActivityText(strconv.FormatFloat(nutrition.ActivityLevels[i].Value, 'f', -1, 64))
}

func (m model) View() string {
	summary := m.form.Estimate().Summary()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Nutrición diaria simple") + "\n")
	b.WriteString(noteStyle.Render("Esta es una estimación diaria mínima y práctica, pensada como referencia general.") + "\n\n")

	b.WriteString(m.label("Peso (kg)", fieldWeight) + " " + m.weight.View() + "\n")

	level := nutrition.ActivityLevels[m.level].Label
	if m.focus == fieldActivity {
		level = focusStyle.Render("‹ " + level + " ›")
	}
	b.WriteString(m.label("Nivel de actividad", fieldActivity) + " " + level + "\n")

	b.WriteString(sectionStyle.Render("Referencia diaria aproximada") + "\n")
	for _, line := range summary.ResultLines() {
		b.WriteString(line + "\n")
	}
	b.WriteString(noteStyle.Render("Estos valores representan un punto de partida razonable. Las necesidades reales pueden variar.") + "\n")

	b.WriteString(sectionStyle.Render("Consejos rápidos") + "\n")
	for _, tip := range summary.Tips {
		b.WriteString("• " + tip + "\n")
	}

	b.WriteString("\n" + noteStyle.Render("Información orientativa. No reemplaza asesoría médica o nutricional.") + "\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) label(text string, f field) string {
	if m.focus == f {
		return focusStyle.Render("> " + text)
	}
	return labelStyle.Render("  " + text)
}
