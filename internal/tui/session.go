// internal/tui/session.go
// Package tui provides the interactive question-and-answer session for
// the chainsight application.
package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/chainsight/internal/appconfig"
	"github.com/mwiater/chainsight/internal/intel"
	"github.com/mwiater/chainsight/internal/rag"
)

// exchange is one completed question and its composed answer.
type exchange struct {
	question string
	answer   rag.Answer
}

// model is the main application model for the Bubble Tea UI.
type model struct {
	ctx              context.Context
	config           *appconfig.Config
	system           *intel.System
	isLoading        bool
	err              error
	textArea         textarea.Model
	viewport         viewport.Model
	spinner          spinner.Model
	history          []exchange
	width, height    int
	requestStartTime time.Time
}

// initialModel creates and initializes a new model with default values.
func initialModel(ctx context.Context, cfg *appconfig.Config, system *intel.System) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ta := textarea.New()
	ta.Placeholder = "Ask about inventory, suppliers, or policies..."
	ta.Focus()
	ta.Prompt = "Ask Anything: "
	ta.ShowLineNumbers = false
	ta.CharLimit = -1
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)

	vp := viewport.New(100, 5)

	return &model{
		ctx:      ctx,
		config:   cfg,
		system:   system,
		spinner:  s,
		textArea: ta,
		viewport: vp,
	}
}

// answerMsg is a message sent when an answer has been composed.
type answerMsg struct {
	question string
	answer   rag.Answer
}

// answerErr is a message sent when answer composition fails.
type answerErr struct{ error }

// tickMsg is a message sent at regular intervals, used for the request timer.
type tickMsg time.Time

// askCmd creates a Bubble Tea command that runs one retrieval-and-compose
// cycle for the given question.
func askCmd(ctx context.Context, system *intel.System, question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := system.Query(ctx, question)
		if err != nil {
			return answerErr{error: err}
		}
		return answerMsg{question: question, answer: answer}
	}
}

// tickCmd creates a Bubble Tea command that sends a tickMsg at a regular interval.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the Bubble Tea model and returns a command to start the spinner animation.
func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.textArea.SetWidth(msg.Width - 3)
		headerHeight := 3
		footerHeight := 4
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight

	case answerMsg:
		m.isLoading = false
		m.history = append(m.history, exchange{question: msg.question, answer: msg.answer})
		m.textArea.Focus()
		m.viewport.GotoBottom()
		return m, nil

	case answerErr:
		m.isLoading = false
		m.err = msg.error
		return m, nil

	case tickMsg:
		if m.isLoading {
			return m, tickCmd()
		}
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	m.textArea, cmd = m.textArea.Update(msg)
	cmds = append(cmds, cmd)

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" && !m.isLoading {
		question := strings.TrimSpace(m.textArea.Value())
		if question != "" {
			m.textArea.Reset()
			m.isLoading = true
			m.err = nil
			m.requestStartTime = time.Now()
			cmds = append(cmds, m.spinner.Tick, askCmd(m.ctx, m.system, question), tickCmd())
		}
	}

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application's UI based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	return m.sessionView()
}

// sessionView renders the header, the question-and-answer history, and
// the input text area.
func (m *model) sessionView() string {
	var builder strings.Builder

	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	modeStyle := lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)

	modeInfo := "Mode: template"
	if m.config.AIMode {
		modeInfo = fmt.Sprintf("Mode: ai (%s)", m.config.Generate.Model)
	}
	docInfo := fmt.Sprintf("Documents: %d", m.system.Index().Len())

	status := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render("Chainsight"),
		modeStyle.Render(modeInfo),
		modeStyle.Render(docInfo),
	)
	help := lipgloss.NewStyle().Render(" (esc to quit)")
	builder.WriteString(status + help + "\n\n")

	var historyBuilder strings.Builder
	userStyle := lipgloss.NewStyle().Bold(true)
	answerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	sourceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	for _, ex := range m.history {
		role := userStyle.Render("You: ")
		wrapped := lipgloss.NewStyle().Width(m.width - lipgloss.Width(role) - 2).Render(ex.question)
		historyBuilder.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, role, wrapped) + "\n")

		role = answerStyle.Render("Answer: ")
		wrapped = lipgloss.NewStyle().Width(m.width - lipgloss.Width(role) - 2).Render(ex.answer.Text)
		historyBuilder.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, role, wrapped) + "\n")
		historyBuilder.WriteString(sourceStyle.Render("  "+rag.Describe(ex.answer)) + "\n")
	}

	m.viewport.SetContent(historyBuilder.String())
	builder.WriteString(m.viewport.View())

	if m.isLoading {
		timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
		builder.WriteString("\n" + m.spinner.View() + fmt.Sprintf(" Composing answer... %ss", timer))
	} else {
		builder.WriteString("\n" + m.textArea.View())
	}

	return builder.String()
}

// StartSession initializes and runs the interactive question session.
func StartSession(ctx context.Context, cfg *appconfig.Config, system *intel.System) {
	if cfg == nil {
		log.Fatalf("Failed to start: configuration is not loaded")
	}

	m := initialModel(ctx, cfg, system)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
