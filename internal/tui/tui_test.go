package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/mock"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

// ── helpers ──────────────────────────────────────────────────────────────────

type stubPage struct {
	name string
	got  []tea.Msg
}

func (p *stubPage) Init() tea.Cmd { return nil }

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.got = append(p.got, msg)
	return p, nil
}

func (p *stubPage) View() string { return p.name }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newRoot() (RootModel, *stubPage, *stubPage) {
	search := &stubPage{name: pageSearch}
	imp := &stubPage{name: pageImport}
	root := NewRootModel(map[string]tea.Model{pageSearch: search, pageImport: imp}, pageSearch, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"))
	return root, search, imp
}

// ── RootModel ────────────────────────────────────────────────────────────────

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _, _ := newRoot()

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, updated.(RootModel).quitByUser)
}

func TestRootModel_NavigateTo(t *testing.T) {
	root, _, _ := newRoot()

	updated, _ := root.Update(NavigateTo{Page: pageImport})
	assert.Equal(t, pageImport, updated.(RootModel).current)
	assert.Equal(t, pageImport, updated.View())

	// неизвестная страница игнорируется
	updated, _ = updated.Update(NavigateTo{Page: "nope"})
	assert.Equal(t, pageImport, updated.(RootModel).current)
}

func TestRootModel_NavigateToDeliversPayload(t *testing.T) {
	root, _, _ := newRoot()

	_, cmd := root.Update(NavigateTo{Page: pageImport, Payload: clearStatusMsg{}})

	require.NotNil(t, cmd)
	assert.Equal(t, clearStatusMsg{}, cmd())
}

func TestRootModel_PageMsgRoutedToOwner(t *testing.T) {
	root, search, imp := newRoot()

	updated, _ := root.Update(NavigateTo{Page: pageImport})
	updated.Update(searchDoneMsg{})

	require.Len(t, search.got, 1)
	assert.IsType(t, searchDoneMsg{}, search.got[0])
	assert.Empty(t, imp.got)
}

func TestRootModel_F1TogglesBuildInfo(t *testing.T) {
	root, search, _ := newRoot()

	updated, _ := root.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, updated.(RootModel).showBuildInfo)
	assert.Contains(t, updated.View(), "1.0.0")

	// клавиши не доходят до страницы, пока открыто окно
	updated, _ = updated.Update(keyRunes("x"))
	assert.Empty(t, search.got)

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, updated.(RootModel).showBuildInfo)
}

// ── searchModel ──────────────────────────────────────────────────────────────

type searchDeps struct {
	search *mock.MockSearchService
	view   *mock.MockViewService
	vault  *mock.MockVaultService
	model  searchModel
}

func newTestSearchModel(ctrl *gomock.Controller) searchDeps {
	deps := searchDeps{
		search: mock.NewMockSearchService(ctrl),
		view:   mock.NewMockViewService(ctrl),
		vault:  mock.NewMockVaultService(ctrl),
	}
	services := &service.Services{
		SearchService: deps.search,
		ViewService:   deps.view,
		VaultService:  deps.vault,
	}
	deps.model = newSearchModel(context.Background(), services, logger.Nop())

	// строка деталей выбранного файла
	deps.vault.EXPECT().OriginalFilename(gomock.Any()).Return("a.pdf").AnyTimes()
	deps.vault.EXPECT().FileSize(gomock.Any()).Return(int64(2048)).AnyTimes()
	return deps
}

func TestSearchModel_TabCyclesTypeAndSchedules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestSearchModel(ctrl)
	records := []models.FileRecord{{ID: 1, Filename: "a.pdf", Filepath: "/v/a.enc", Extension: "pdf"}}

	deps.search.EXPECT().
		Schedule(models.SearchFilter{Type: models.FileTypePDF}, gomock.Any()).
		Do(func(_ models.SearchFilter, callback func(models.SearchResult, error)) {
			callback(models.SearchResult{Records: records}, nil)
		})

	updated, cmd := deps.model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := updated.(searchModel)
	require.NotNil(t, cmd)
	assert.Equal(t, models.FileTypePDF, m.filter().Type)

	assert.Nil(t, cmd())

	msg := m.waitSearch()()
	updated, _ = m.Update(msg)
	m = updated.(searchModel)

	assert.Equal(t, records, m.records)
	view := m.View()
	assert.Contains(t, view, "a.pdf")
	assert.Contains(t, view, "2.00 KB")
}

func TestSearchModel_DroppedSearchIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestSearchModel(ctrl)

	updated, _ := deps.model.Update(searchDoneMsg{err: service.ErrSearchInProgress})
	assert.Empty(t, updated.(searchModel).errMsg)

	updated, _ = deps.model.Update(searchDoneMsg{err: errors.New("boom")})
	assert.Equal(t, "boom", updated.(searchModel).errMsg)
}

func TestSearchModel_DeleteAsksForConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestSearchModel(ctrl)
	deps.model.records = []models.FileRecord{{Filename: "a.pdf", Filepath: "/v/a.enc"}}

	updated, cmd := deps.model.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m := updated.(searchModel)
	assert.Nil(t, cmd)
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "a.pdf")

	// отказ не удаляет
	updated, cmd = m.Update(keyRunes("n"))
	assert.Nil(t, cmd)
	assert.Nil(t, updated.(searchModel).confirm)

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	deps.vault.EXPECT().Delete(gomock.Any(), "/v/a.enc").Return(nil)

	updated, cmd = updated.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, deleteDoneMsg{name: "a.pdf"}, cmd())
}

func TestSearchModel_OpenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestSearchModel(ctrl)
	deps.model.records = []models.FileRecord{{Filename: "a.pdf", Filepath: "/v/a.enc"}}

	deps.view.EXPECT().OpenForView(gomock.Any(), "/v/a.enc").Return(models.ViewHandle{}, crypto.ErrCrypto)

	_, cmd := deps.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	updated, _ := deps.model.Update(cmd())
	m := updated.(searchModel)
	require.NotNil(t, m.overlay)
	assert.Equal(t, humanizeError(crypto.ErrCrypto), m.overlay.message)
	assert.Contains(t, m.View(), "Не удалось открыть файл")

	// пока открыт оверлей, навигация заблокирована
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Nil(t, updated.(searchModel).overlay)
}

func TestSearchModel_EnterWithoutResultsDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestSearchModel(ctrl)

	_, cmd := deps.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

// ── importModel ──────────────────────────────────────────────────────────────

type fakeSubmitter struct {
	job    models.ImportJob
	events chan models.ImportEvent
	err    error
}

func (f *fakeSubmitter) Submit(_ context.Context, job models.ImportJob) (<-chan models.ImportEvent, error) {
	f.job = job
	return f.events, f.err
}

func TestImportModel_EmptySourcesRejected(t *testing.T) {
	m := newImportModel(context.Background(), &fakeSubmitter{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.NotEmpty(t, updated.(importModel).errMsg)
}

func TestImportModel_RunsJobToCompletion(t *testing.T) {
	runner := &fakeSubmitter{events: make(chan models.ImportEvent, 2)}
	m := newImportModel(context.Background(), runner)
	m.input.SetValue("/docs/a, /docs/b.pdf ,")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(importModel)

	require.NotNil(t, cmd)
	assert.True(t, m.running)
	assert.Equal(t, []string{"/docs/a", "/docs/b.pdf"}, runner.job.Sources)
	assert.Equal(t, models.ImportMirrorStructure, runner.job.Policy)
	assert.Equal(t, models.Panels()[1], runner.job.Panel)

	// esc во время импорта игнорируется
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)

	updated, _ = m.Update(importEventMsg{ok: true, event: models.ImportEvent{Kind: models.ImportEventProgress, Current: 1, Total: 2}})
	m = updated.(importModel)
	assert.Equal(t, 1, m.current)
	assert.Contains(t, m.View(), "1 / 2")

	result := models.ImportResult{Total: 2, Imported: 1, Failures: []models.ImportFailure{{Path: "/docs/b.pdf", Reason: store.ErrCatalogWrite}}}
	updated, cmd = m.Update(importEventMsg{ok: true, event: models.ImportEvent{Kind: models.ImportEventDone, Current: 1, Total: 2, Result: result}})
	m = updated.(importModel)

	require.NotNil(t, cmd)
	assert.False(t, m.running)
	require.NotNil(t, m.result)
	view := m.View()
	assert.Contains(t, view, "Импортировано: 1 из 2")
	assert.Contains(t, view, "b.pdf")
}

func TestImportModel_SubmitError(t *testing.T) {
	m := newImportModel(context.Background(), &fakeSubmitter{err: fmt.Errorf("wrap: %w", context.Canceled)})
	m.input.SetValue("/docs")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, updated.(importModel).running)
	assert.Contains(t, updated.(importModel).errMsg, "canceled")
}

func TestImportModel_EscBackToSearch(t *testing.T) {
	m := newImportModel(context.Background(), &fakeSubmitter{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageSearch}, cmd())
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestFitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"документ.pdf", 8, "докум..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "Файл не найден в хранилище", humanizeError(fmt.Errorf("x: %w", store.ErrObjectNotFound)))
	assert.Equal(t, "Неизвестная панель", humanizeError(models.ErrUnknownPanel))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
}

func TestParseSources(t *testing.T) {
	assert.Nil(t, parseSources(" , "))
	assert.Equal(t, []string{"a", "b c"}, parseSources("a, b c"))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, ratio(1, 0))
	assert.Equal(t, 0.5, ratio(1, 2))
	assert.Equal(t, 1.0, ratio(3, 2))
}
