// ABOUTME: Bubble Tea chat interface for interactive Q&A over ingested documents
// ABOUTME: Renders the running transcript and answer provenance
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/core"
)

// SessionPort is the TUI-facing subset of the session.
type SessionPort interface {
	Ask(ctx context.Context, question string) core.Answer
	IndexSize() int
}

// answerMsg carries a completed pipeline result back into the update loop
type answerMsg struct {
	question string
	answer   core.Answer
}

// Model is the Bubble Tea model for the chat application.
type Model struct {
	session    SessionPort
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	status     string
	thinking   bool
	ready      bool
}

// New creates a new chat model instance.
func New(session SessionPort, documentCount int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question about the uploaded documents"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	status := fmt.Sprintf("%d document(s) indexed (%d chunks). Type a question and press Enter.",
		documentCount, session.IndexSize())
	return Model{session: session, input: ti, viewport: vp, status: status}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window, and answer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		reserved := 2 + qh + 1 // header, status, input frame, spacer
		vh := msg.Height - reserved - th
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width-4)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderTranscript())
		return m, nil

	case answerMsg:
		m.thinking = false
		m.transcript = append(m.transcript,
			userStyle.Render("You: ")+msg.question,
			botStyle.Render("Hub: ")+msg.answer.Answer,
		)
		if len(msg.answer.Sources) > 0 {
			m.transcript = append(m.transcript,
				sourceStyle.Render("sources: "+strings.Join(msg.answer.Sources, ", ")))
		}
		m.status = "Ready."
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" && !m.thinking {
				m.thinking = true
				m.status = "Generating response..."
				m.input.SetValue("")
				session := m.session
				return m, func() tea.Msg {
					return answerMsg{question: q, answer: session.Ask(context.Background(), q)}
				}
			}
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Corporate Training Knowledge Hub")
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	if len(m.transcript) == 0 {
		return "Ask questions about the uploaded document(s)."
	}
	return strings.Join(m.transcript, "\n\n")
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	sourceStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
