package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

const (
	resultRows      = 15
	statusClearWait = 3 * time.Second
)

// panelFilters is the panel cycle of the search page; "" means all panels.
var panelFilters = append([]models.Panel{""}, models.Panels()...)

type searchModel struct {
	ctx      context.Context
	services *service.Services
	logger   *logger.Logger

	// results receives debounced search outcomes from the search service.
	results chan searchDoneMsg

	input    textinput.Model
	typeIdx  int
	panelIdx int

	records []models.FileRecord
	idx     int
	cached  bool
	elapsed time.Duration

	confirm *confirmDeleteModel
	overlay *errorOverlayModel
	status  string
	errMsg  string
}

func newSearchModel(ctx context.Context, services *service.Services, logger *logger.Logger) searchModel {
	input := textinput.New()
	input.Placeholder = "имя файла"
	input.Prompt = "Поиск: "
	input.CharLimit = 255
	input.Focus()

	return searchModel{
		ctx:      ctx,
		services: services,
		logger:   logger,
		results:  make(chan searchDoneMsg, 1),
		input:    input,
	}
}

func (m searchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitSearch(), m.schedule())
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		if msg.err != nil {
			// a dropped search is superseded by the next keystroke
			if !isDropped(msg.err) {
				m.errMsg = humanizeError(msg.err)
			}
			return m, m.waitSearch()
		}
		m.errMsg = ""
		m.records = msg.result.Records
		m.cached = msg.result.Cached
		m.elapsed = msg.result.Elapsed
		if m.idx >= len(m.records) {
			m.idx = max(len(m.records)-1, 0)
		}
		return m, m.waitSearch()
	case viewOpenedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{title: "Не удалось открыть файл", message: humanizeError(msg.err)}
			return m, nil
		}
		m.errMsg = ""
		if msg.copied {
			m.status = "Путь скопирован: " + msg.handle.Path
		} else {
			m.status = "Открыт: " + msg.handle.OriginalName
		}
		return m, clearStatusLater()
	case deleteDoneMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{title: "Ошибка удаления", message: humanizeError(msg.err)}
			return m, nil
		}
		m.status = "Удалён: " + msg.name
		m.errMsg = ""
		return m, tea.Batch(m.schedule(), clearStatusLater())
	case importFinishedMsg:
		return m, m.schedule()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m searchModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			record, ok := m.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdDelete(record)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.nextType):
		m.typeIdx = (m.typeIdx + 1) % len(models.FileTypeFilters())
		return m, m.schedule()
	case key.Matches(msg, keys.nextPanel):
		m.panelIdx = (m.panelIdx + 1) % len(panelFilters)
		return m, m.schedule()
	case key.Matches(msg, keys.openImport):
		return m, func() tea.Msg { return NavigateTo{Page: pageImport} }
	case key.Matches(msg, keys.enter):
		record, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdOpen(record, false)
	case key.Matches(msg, keys.copyPath):
		record, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdOpen(record, true)
	case key.Matches(msg, keys.delete):
		record, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmDeleteModel{name: record.Filename, panel: record.Panel.DisplayName()}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.schedule())
	}
	return m, cmd
}

func (m searchModel) View() string {
	if m.overlay != nil {
		return renderPage("ОШИБКА", m.overlay.View(), "")
	}
	if m.confirm != nil {
		return renderPage("УДАЛЕНИЕ", m.confirm.View(), "")
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Тип: %s │ Панель: %s\n\n", m.filter().Type, panelLabel(m.filter().Panel))

	if len(m.records) == 0 {
		b.WriteString("Ничего не найдено\n")
	}

	start := 0
	if m.idx >= resultRows {
		start = m.idx - resultRows + 1
	}
	end := min(start+resultRows, len(m.records))
	for i := start; i < end; i++ {
		r := m.records[i]
		line := fmt.Sprintf("%s %-40s %-18s %s",
			models.FileIcon(r.Extension),
			fitText(r.Filename, 40),
			fitText(r.Panel.DisplayName(), 18),
			fitText(r.FolderName, 20),
		)
		if i == m.idx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if record, ok := m.current(); ok {
		vault := m.services.VaultService
		fmt.Fprintf(&b, "\n%s │ %s\n",
			fitText(vault.OriginalFilename(record.Filepath), 50),
			models.FormatFileSize(vault.FileSize(record.Filepath)),
		)
	}

	summary := fmt.Sprintf("\nНайдено: %d за %s", len(m.records), m.elapsed.Round(time.Millisecond))
	if m.cached {
		summary += " (кэш)"
	}
	b.WriteString(helpStyle.Render(summary))

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	return renderPage(
		"ПОИСК ДОКУМЕНТОВ",
		b.String(),
		"tab: тип │ shift+tab: панель │ enter: открыть │ ctrl+y: копировать путь │ ctrl+d: удалить │ ctrl+n: импорт",
	)
}

func (m searchModel) filter() models.SearchFilter {
	return models.SearchFilter{
		Name:  m.input.Value(),
		Type:  models.FileTypeFilters()[m.typeIdx],
		Panel: panelFilters[m.panelIdx],
	}
}

func (m searchModel) current() (models.FileRecord, bool) {
	if m.idx < 0 || m.idx >= len(m.records) {
		return models.FileRecord{}, false
	}
	return m.records[m.idx], true
}

// schedule hands the current filter to the debounced search. The outcome
// arrives on m.results.
func (m searchModel) schedule() tea.Cmd {
	filter := m.filter()
	results := m.results
	svc := m.services.SearchService

	return func() tea.Msg {
		svc.Schedule(filter, func(result models.SearchResult, err error) {
			// keep only the newest outcome
			select {
			case <-results:
			default:
			}
			results <- searchDoneMsg{result: result, err: err}
		})
		return nil
	}
}

func (m searchModel) waitSearch() tea.Cmd {
	results := m.results
	return func() tea.Msg {
		return <-results
	}
}

func (m searchModel) cmdOpen(record models.FileRecord, copyPath bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ViewService
	log := m.logger

	return func() tea.Msg {
		handle, err := svc.OpenForView(ctx, record.Filepath)
		if err != nil {
			return viewOpenedMsg{err: err}
		}

		if copyPath {
			if err = clipboard.WriteAll(handle.Path); err != nil {
				return viewOpenedMsg{err: fmt.Errorf("ошибка копирования: %w", err)}
			}
			return viewOpenedMsg{handle: handle, copied: true}
		}

		if err = utils.OpenWithSystemViewer(handle.Path); err != nil {
			log.Warn().Err(err).Str("path", handle.Path).Msg("failed to launch system viewer")
			return viewOpenedMsg{err: err}
		}
		return viewOpenedMsg{handle: handle}
	}
}

func (m searchModel) cmdDelete(record models.FileRecord) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService

	return func() tea.Msg {
		err := svc.Delete(ctx, record.Filepath)
		return deleteDoneMsg{name: record.Filename, err: err}
	}
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(statusClearWait, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func panelLabel(p models.Panel) string {
	if p == "" {
		return "все"
	}
	return p.DisplayName()
}

func isDropped(err error) bool {
	return errors.Is(err, service.ErrSearchInProgress)
}
