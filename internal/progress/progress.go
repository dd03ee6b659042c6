// progress renders a terminal progress bar while a table is being processed.
// The pipeline reports completed rows through Tracker.Update, which is safe to
// call from worker goroutines.
package progress

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type tickMsg struct {
	done  int
	total int
}

type doneMsg struct{}

type model struct {
	title string
	bar   progress.Model
	done  int
	total int
	width int
}

func newModel(title string) model {
	return model{
		title: title,
		bar:   progress.New(progress.WithDefaultGradient()),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		m.done = msg.done
		m.total = msg.total
		return m, m.bar.SetPercent(m.percent())

	case doneMsg:
		return m, tea.Sequence(m.bar.SetPercent(1), tea.Quit)

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m model) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(m.title))
	s.WriteString("\n")
	s.WriteString(m.bar.View())
	s.WriteString("\n")
	s.WriteString(countStyle.Render(fmt.Sprintf("%d / %d rows", m.done, m.total)))
	s.WriteString("\n")
	return s.String()
}

// Tracker owns the running bubbletea program.
type Tracker struct {
	program *tea.Program
	errs    chan error
}

// Start launches the bar in its own goroutine and returns immediately.
func Start(title string) *Tracker {
	t := &Tracker{
		program: tea.NewProgram(newModel(title)),
		errs:    make(chan error, 1),
	}
	go func() {
		_, err := t.program.Run()
		t.errs <- err
	}()
	return t
}

// Update reports progress. It matches the pipeline's callback signature.
func (t *Tracker) Update(done, total int) {
	t.program.Send(tickMsg{done: done, total: total})
}

// Finish fills the bar, stops the program, and waits for the terminal to be
// restored.
func (t *Tracker) Finish() error {
	t.program.Send(doneMsg{})
	return <-t.errs
}

// Abort tears the program down without completing the bar.
func (t *Tracker) Abort() {
	t.program.Quit()
	<-t.errs
}
