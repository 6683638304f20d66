// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/recite/internal/model"
	"github.com/verte-zerg/recite/internal/session"
	"github.com/verte-zerg/recite/internal/source"
	"github.com/verte-zerg/recite/internal/stats"
)

const (
	opacityStep     = 10
	opacityBarWidth = 20
	pasteHeight     = 10
)

// tickMsg is one second of a timer generation.
type tickMsg struct {
	gen uint64
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	ctrl *session.Controller
	log  zerolog.Logger

	keys  keyMap
	help  help.Model
	paste textarea.Model
	input textinput.Model

	width  int
	height int

	errMsg string
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	practiceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	resultStyle    = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	resultValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// NewModel constructs a typing TUI model around ctrl. When ctrl already holds
// sentences the UI opens on the typing screen.
func NewModel(ctrl *session.Controller, logger zerolog.Logger) *Model {
	paste := textarea.New()
	paste.Placeholder = "Paste your text here..."
	paste.ShowLineNumbers = false
	paste.CharLimit = 0
	paste.SetHeight(pasteHeight)
	paste.SetValue(ctrl.SourceText())

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0

	m := &Model{
		ctrl:  ctrl,
		log:   logger,
		keys:  newKeyMap(),
		help:  help.New(),
		paste: paste,
		input: input,
	}
	m.focusForState()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.ctrl.State() == session.Idle {
		return textarea.Blink
	}
	return textinput.Blink
}

// Result returns the final stats once the run is completed.
func (m *Model) Result() (model.Result, bool) {
	return m.ctrl.FinalStats()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := m.contentWidth()
		m.paste.SetWidth(w)
		m.input.Width = w - lipgloss.Width(m.input.Prompt) - 1
		m.help.Width = w
		return m, nil
	case tickMsg:
		if m.ctrl.Tick(msg.gen) {
			return m, tick(msg.gen)
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.ctrl.State() {
		case session.Idle:
			return m.updateIdle(msg)
		case session.Completed:
			return m.updateCompleted(msg)
		default:
			return m.updateTyping(msg)
		}
	}
	return m.forward(msg)
}

func (m *Model) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		m.ctrl.SetSourceText(source.FlattenLines(m.paste.Value()))
		n, err := m.ctrl.Submit()
		if err != nil {
			if errors.Is(err, session.ErrNoSentences) {
				m.errMsg = "Nothing to type: end sentences with '.', '!' or '?'."
			} else {
				m.errMsg = err.Error()
			}
			m.log.Warn().Err(err).Msg("submit rejected")
			return m, nil
		}
		m.errMsg = ""
		m.paste.Reset()
		m.log.Info().Int("sentences", n).Msg("text submitted")
		return m, m.focusForState()
	}
	var cmd tea.Cmd
	m.paste, cmd = m.paste.Update(msg)
	m.ctrl.SetSourceText(m.paste.Value())
	return m, cmd
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.ctrl.Snapshot()
	switch {
	case key.Matches(msg, m.keys.Skip):
		if err := m.ctrl.Skip(); err != nil {
			m.log.Error().Err(err).Msg("skip failed")
			return m, nil
		}
		m.input.SetValue("")
		if !snap.PracticeMode {
			m.log.Info().Msg("practice mode entered")
		}
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.restart()
		return m, nil
	case key.Matches(msg, m.keys.NewText):
		m.unload()
		return m, m.focusForState()
	case key.Matches(msg, m.keys.OpacityUp):
		m.ctrl.SetOpacity(snap.TextOpacity + opacityStep)
		return m, nil
	case key.Matches(msg, m.keys.OpacityDown):
		m.ctrl.SetOpacity(snap.TextOpacity - opacityStep)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	value := m.input.Value()
	if value == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.keystroke(value))
}

func (m *Model) updateCompleted(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.TryAgain):
		m.restart()
		return m, m.focusForState()
	case key.Matches(msg, m.keys.NewText):
		m.unload()
		return m, m.focusForState()
	}
	return m, nil
}

// keystroke forwards the input line to the controller and reacts to the
// transitions it reports.
func (m *Model) keystroke(value string) tea.Cmd {
	res := m.ctrl.Keystroke(value)
	var cmd tea.Cmd
	if res.Started {
		m.log.Debug().Msg("timer started")
		cmd = tick(m.ctrl.TimerGeneration())
	}
	if res.SentenceDone {
		m.input.SetValue("")
		m.log.Debug().Int("mistakes", res.Mistakes).Int("index", m.ctrl.Snapshot().CurrentIndex).Msg("sentence completed")
	}
	if res.Completed {
		m.input.Blur()
		if final, ok := m.ctrl.FinalStats(); ok {
			m.log.Info().
				Int("wpm", final.WordsPerMinute).
				Int("accuracy", final.Accuracy).
				Int("elapsed_s", final.ElapsedSeconds).
				Msg("session completed")
		}
	}
	return cmd
}

func (m *Model) restart() {
	m.ctrl.Reset()
	m.input.SetValue("")
	m.log.Info().Msg("session reset")
}

func (m *Model) unload() {
	m.ctrl.Unload()
	m.input.SetValue("")
	m.paste.Reset()
	m.errMsg = ""
	m.log.Info().Msg("text unloaded")
}

func (m *Model) focusForState() tea.Cmd {
	switch m.ctrl.State() {
	case session.Idle:
		m.input.Blur()
		return m.paste.Focus()
	case session.Completed:
		m.input.Blur()
		m.paste.Blur()
		return nil
	default:
		m.paste.Blur()
		return m.input.Focus()
	}
}

func (m *Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.ctrl.State() {
	case session.Idle:
		m.paste, cmd = m.paste.Update(msg)
	case session.AwaitingInput, session.Running:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func tick(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m *Model) contentWidth() int {
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.ctrl.Snapshot()
	sections := []string{titleStyle.Render("Typing Speed and Memorization"), ""}
	switch snap.State {
	case session.Idle:
		sections = append(sections, m.paste.View())
		if m.errMsg != "" {
			sections = append(sections, errorStyle.Render(m.errMsg))
		}
	case session.Completed:
		sections = append(sections, renderResult(snap))
	default:
		sections = append(sections,
			m.renderSentence(snap),
			"",
			m.input.View(),
			"",
			fmt.Sprintf("Text opacity: %d%% %s", snap.TextOpacity, opacityBar(snap.TextOpacity, opacityBarWidth)),
			renderFooter(snap),
		)
	}
	sections = append(sections, "", m.help.View(m.keys.forState(snap.State, snap.PracticeMode)))
	content := strings.Join(sections, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	content = lipgloss.NewStyle().Width(m.contentWidth()).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderSentence(snap session.Snapshot) string {
	styled := buildStyledRunes([]rune(snap.CurrentSentence()), []rune(m.input.Value()), snap.TextOpacity)
	if m.width == 0 {
		return renderStyledRunes(styled)
	}
	return wrapStyledRunes(styled, m.contentWidth())
}

func renderFooter(snap session.Snapshot) string {
	segments := []string{
		fmt.Sprintf("Sentence %d/%d", snap.CurrentIndex+1, len(snap.Sentences)),
		stats.FormatElapsed(snap.ElapsedSeconds),
		fmt.Sprintf("Live WPM: %d", snap.LiveWPM),
	}
	footer := footerStyle.Render(strings.Join(segments, "  "))
	if snap.PracticeMode {
		footer += "  " + practiceStyle.Render("Practice mode")
	}
	return footer
}

func renderResult(snap session.Snapshot) string {
	if snap.FinalStats == nil {
		return ""
	}
	res := snap.FinalStats
	lines := []string{
		titleStyle.Render("Typing completed!"),
		fmt.Sprintf("Words per minute: %s", resultValueStyle.Render(fmt.Sprintf("%d", res.WordsPerMinute))),
		fmt.Sprintf("Accuracy: %s", resultValueStyle.Render(fmt.Sprintf("%d%%", res.Accuracy))),
		fmt.Sprintf("Time: %s", stats.FormatElapsed(res.ElapsedSeconds)),
	}
	return resultStyle.Render(strings.Join(lines, "\n"))
}
