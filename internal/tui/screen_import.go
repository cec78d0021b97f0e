package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-doc-vault/internal/workers"
	"github.com/MKhiriev/go-doc-vault/models"
)

const maxShownFailures = 5

// importSubmitter is the part of the import worker used by the import page.
type importSubmitter interface {
	Submit(ctx context.Context, job models.ImportJob) (<-chan models.ImportEvent, error)
}

var _ importSubmitter = (*workers.ImportRunner)(nil)

type importModel struct {
	ctx    context.Context
	runner importSubmitter

	input    textinput.Model
	panelIdx int
	policy   models.ImportPolicy

	spinner  spinner.Model
	progress progress.Model
	events   <-chan models.ImportEvent
	running  bool
	current  int
	total    int

	result *models.ImportResult
	errMsg string
}

func newImportModel(ctx context.Context, runner importSubmitter) importModel {
	input := textinput.New()
	input.Placeholder = "/путь/к/папке или файлу; через запятую"
	input.Prompt = "Источник: "
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return importModel{
		ctx:      ctx,
		runner:   runner,
		input:    input,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m importModel) Init() tea.Cmd {
	return nil
}

func (m importModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importEventMsg:
		if !msg.ok {
			m.running = false
			m.events = nil
			return m, nil
		}
		return m.handleEvent(msg.event)
	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progress.FrameMsg:
		updated, cmd := m.progress.Update(msg)
		if p, ok := updated.(progress.Model); ok {
			m.progress = p
		}
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m importModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// a running job cannot be cancelled, only watched
	if m.running {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageSearch} }
	case key.Matches(msg, keys.nextType):
		m.panelIdx = (m.panelIdx + 1) % len(models.Panels())
		return m, nil
	case key.Matches(msg, keys.policy):
		if m.policy == models.ImportFlatten {
			m.policy = models.ImportMirrorStructure
		} else {
			m.policy = models.ImportFlatten
		}
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m importModel) submit() (tea.Model, tea.Cmd) {
	sources := parseSources(m.input.Value())
	if len(sources) == 0 {
		m.errMsg = "Укажите хотя бы один путь"
		return m, nil
	}

	job := models.ImportJob{
		Sources: sources,
		Panel:   models.Panels()[m.panelIdx],
		Policy:  m.policy,
	}

	events, err := m.runner.Submit(m.ctx, job)
	if err != nil {
		m.errMsg = humanizeError(err)
		return m, nil
	}

	m.events = events
	m.running = true
	m.current, m.total = 0, 0
	m.result = nil
	m.errMsg = ""

	return m, tea.Batch(waitImportEvent(events), m.spinner.Tick, m.progress.SetPercent(0))
}

func (m importModel) handleEvent(event models.ImportEvent) (tea.Model, tea.Cmd) {
	m.current, m.total = event.Current, event.Total

	if event.Kind == models.ImportEventProgress {
		return m, tea.Batch(waitImportEvent(m.events), m.progress.SetPercent(ratio(event.Current, event.Total)))
	}

	// done event: the channel is closed right after it
	m.running = false
	m.events = nil
	if event.Err != nil {
		m.errMsg = humanizeError(event.Err)
		return m, nil
	}

	result := event.Result
	m.result = &result
	m.input.SetValue("")

	return m, tea.Batch(
		m.progress.SetPercent(1),
		func() tea.Msg { return importFinishedMsg{} },
	)
}

func (m importModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Панель: %s │ Режим: %s\n\n", models.Panels()[m.panelIdx].DisplayName(), policyLabel(m.policy))

	if m.running {
		fmt.Fprintf(&b, "%s Импорт... %d / %d\n", m.spinner.View(), m.current, m.total)
		b.WriteString(m.progress.View())
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString(m.progress.View())
		b.WriteString("\n")
		fmt.Fprintf(&b, "Импортировано: %d из %d\n", m.result.Imported, m.result.Total)
		if n := len(m.result.Failures); n > 0 {
			fmt.Fprintf(&b, "Ошибок: %d\n", n)
			for i, f := range m.result.Failures {
				if i == maxShownFailures {
					fmt.Fprintf(&b, "  ... и ещё %d\n", n-maxShownFailures)
					break
				}
				fmt.Fprintf(&b, "  %s: %s\n", fitText(filepath.Base(f.Path), 30), humanizeError(f.Reason))
			}
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	return renderPage(
		"ИМПОРТ ДОКУМЕНТОВ",
		b.String(),
		"enter: импорт │ tab: панель │ ctrl+p: режим │ esc: к поиску",
	)
}

func waitImportEvent(events <-chan models.ImportEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		return importEventMsg{event: event, ok: ok}
	}
}

// parseSources splits a comma separated list of paths.
func parseSources(raw string) []string {
	var sources []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			sources = append(sources, p)
		}
	}
	return sources
}

func policyLabel(p models.ImportPolicy) string {
	if p == models.ImportMirrorStructure {
		return "структура папок"
	}
	return "плоский"
}

func ratio(current, total int) float64 {
	if total <= 0 {
		return 0
	}
	return min(float64(current)/float64(total), 1)
}
