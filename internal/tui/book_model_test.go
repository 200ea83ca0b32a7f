package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-book/internal/service"
	"github.com/MKhiriev/go-notes-book/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoteService struct {
	listFn   func(ctx context.Context) ([]models.Note, error)
	createFn func(ctx context.Context, draft models.NoteDraft) (models.Note, error)
	updateFn func(ctx context.Context, id string, draft models.NoteDraft) (models.Note, error)
	deleteFn func(ctx context.Context, id string) error

	created []models.NoteDraft
	deleted []string
}

func (f *fakeNoteService) List(ctx context.Context) ([]models.Note, error) {
	if f.listFn == nil {
		return []models.Note{}, nil
	}
	return f.listFn(ctx)
}

func (f *fakeNoteService) Create(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	f.created = append(f.created, draft)
	if f.createFn == nil {
		return models.Note{ID: "new", Title: draft.Title, Content: draft.Content, CreatedAt: time.Now().UTC()}, nil
	}
	return f.createFn(ctx, draft)
}

func (f *fakeNoteService) Update(ctx context.Context, id string, draft models.NoteDraft) (models.Note, error) {
	if f.updateFn == nil {
		return models.Note{ID: id, Title: draft.Title, Content: draft.Content}, nil
	}
	return f.updateFn(ctx, id, draft)
}

func (f *fakeNoteService) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

type fakeAppInfoService struct {
	version string
	err     error
}

func (f fakeAppInfoService) ServerVersion(context.Context) (string, error) {
	return f.version, f.err
}

func immediateTick(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(time.Now()) }
}

func makeNotes(n int) []models.Note {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	notes := make([]models.Note, n)
	for i := range notes {
		notes[i] = models.Note{
			ID:        fmt.Sprintf("n%d", i),
			Title:     fmt.Sprintf("Note %d", i),
			Content:   fmt.Sprintf("content %d", i),
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return notes
}

func newTestModel(t *testing.T, notes *fakeNoteService) bookModel {
	t.Helper()
	services := &service.ClientServices{
		NoteService:    notes,
		AppInfoService: fakeAppInfoService{version: "1.2.3"},
	}
	m := newBookModel(context.Background(), services, models.NewAppBuildInfo("0.1.0", "", ""), nil)
	m.tick = immediateTick
	m.writeClipboard = func(string) error { return nil }
	return m
}

func loadedModel(t *testing.T, notes *fakeNoteService, n int) bookModel {
	t.Helper()
	m := newTestModel(t, notes)
	return update(t, m, notesLoadedMsg{notes: makeNotes(n)})
}

func update(t *testing.T, m bookModel, msg tea.Msg) bookModel {
	t.Helper()
	next, _ := updateCmd(t, m, msg)
	return next
}

func updateCmd(t *testing.T, m bookModel, msg tea.Msg) (bookModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(bookModel)
	require.True(t, ok)
	return bm, cmd
}

// findMsg runs cmd, flattening batches, and returns the first message of
// type T.
func findMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	require.NotNil(t, cmd)

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case T:
			return msg
		}
	}

	var zero T
	t.Fatalf("no %T produced", zero)
	return zero
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBookModel_InitLoadsNotes(t *testing.T) {
	svc := &fakeNoteService{listFn: func(context.Context) ([]models.Note, error) {
		return makeNotes(3), nil
	}}
	m := newTestModel(t, svc)
	assert.Contains(t, m.View(), msgLoading)

	loaded := findMsg[notesLoadedMsg](t, m.Init())
	m = update(t, m, loaded)

	assert.False(t, m.loading)
	assert.Equal(t, 3, m.book.Len())
	view := m.View()
	assert.Contains(t, view, "Notes loaded: 3")
	assert.Contains(t, view, "Spread 1/2")
	assert.Contains(t, view, "Note 0")
	assert.Contains(t, view, "Note 1")
}

func TestBookModel_SpinnerStopsAfterLoad(t *testing.T) {
	m := newTestModel(t, &fakeNoteService{})
	tick := findMsg[spinner.TickMsg](t, m.Init())

	_, cmd := updateCmd(t, m, tick)
	assert.NotNil(t, cmd, "spinner keeps ticking while loading")

	m = update(t, m, notesLoadedMsg{notes: makeNotes(1)})
	_, cmd = updateCmd(t, m, tick)
	assert.Nil(t, cmd)
}

func TestBookModel_EmptyBook(t *testing.T) {
	m := loadedModel(t, &fakeNoteService{}, 0)

	view := m.View()
	assert.Contains(t, view, msgEmptyBook)
	assert.Contains(t, view, "Spread 1/1")
}

func TestBookModel_LoadFailure(t *testing.T) {
	m := newTestModel(t, &fakeNoteService{})
	m = update(t, m, notesLoadedMsg{err: fmt.Errorf("list notes: %w", service.ErrServerUnavailable)})

	assert.False(t, m.loading)
	assert.Equal(t, 0, m.book.Len())
	assert.Equal(t, msgLoadFailed, m.status)
	assert.True(t, m.statusErr)
	assert.Equal(t, msgServerUnavailable, m.errOverlay.message)
	assert.Contains(t, m.View(), "Error")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.errOverlay.active())
	assert.Contains(t, m.View(), msgEmptyBook)
}

func TestBookModel_ReloadFailureKeepsNotes(t *testing.T) {
	svc := &fakeNoteService{listFn: func(context.Context) ([]models.Note, error) {
		return nil, service.ErrServerError
	}}
	m := loadedModel(t, svc, 2)

	m, cmd := updateCmd(t, m, runes("r"))
	assert.True(t, m.loading)
	m = update(t, m, findMsg[notesLoadedMsg](t, cmd))

	assert.Equal(t, 2, m.book.Len())
	assert.Equal(t, msgLoadFailed, m.status)
}

func TestBookModel_ReloadIgnoredWhileLoading(t *testing.T) {
	calls := 0
	svc := &fakeNoteService{listFn: func(context.Context) ([]models.Note, error) {
		calls++
		return makeNotes(1), nil
	}}

	m := newTestModel(t, svc)
	require.True(t, m.loading)
	_, cmd := updateCmd(t, m, runes("r"))
	assert.Nil(t, cmd)

	m = loadedModel(t, svc, 1)
	m, cmd = updateCmd(t, m, runes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	m, second := updateCmd(t, m, runes("r"))
	assert.Nil(t, second)

	m = update(t, m, findMsg[notesLoadedMsg](t, cmd))
	assert.False(t, m.loading)
	assert.Equal(t, 1, calls)
}

func TestBookModel_PageTurn(t *testing.T) {
	m := loadedModel(t, &fakeNoteService{}, 5)

	m, cmd := updateCmd(t, m, runes("l"))
	require.NotNil(t, cmd)
	assert.True(t, m.book.Navigator().Animating())
	assert.Equal(t, 0, m.book.Navigator().Index())
	assert.Contains(t, m.View(), "Turning page")

	m, second := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, second, "input during a turn is ignored")

	m = update(t, m, cmd())
	assert.False(t, m.book.Navigator().Animating())
	assert.Equal(t, 1, m.book.Navigator().Index())
	assert.Contains(t, m.View(), "Spread 2/3")

	m, cmd = updateCmd(t, m, runes("h"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())
	assert.Equal(t, 0, m.book.Navigator().Index())

	_, cmd = updateCmd(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd, "no turn before the first spread")
}

func TestBookModel_ListChangeCancelsTurn(t *testing.T) {
	m := loadedModel(t, &fakeNoteService{}, 4)

	m, cmd := updateCmd(t, m, runes("l"))
	require.NotNil(t, cmd)
	pending := cmd()

	m = update(t, m, noteCreatedMsg{note: models.Note{ID: "fresh", Title: "Fresh"}})
	assert.False(t, m.book.Navigator().Animating())

	m = update(t, m, pending)
	assert.Equal(t, 0, m.book.Navigator().Index())
	assert.Equal(t, 5, m.book.Len())
}

func TestBookModel_TabSwitchesFocus(t *testing.T) {
	m := loadedModel(t, &fakeNoteService{}, 3)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, pageRight, m.focus)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, pageLeft, m.focus)

	m, cmd := updateCmd(t, m, runes("l"))
	m = update(t, m, cmd())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, pageLeft, m.focus, "right page of the last spread is blank")
}

func TestBookModel_CreateNote(t *testing.T) {
	svc := &fakeNoteService{}
	m := loadedModel(t, svc, 2)

	m = update(t, m, runes("n"))
	require.Equal(t, modeForm, m.mode)
	assert.Contains(t, m.View(), "NEW NOTE")

	m = update(t, m, runes("  Groceries  "))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, runes("milk"))

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	m, clearCmd := updateCmd(t, m, cmd())
	require.Len(t, svc.created, 1)
	assert.Equal(t, models.NoteDraft{Title: "Groceries", Content: "milk"}, svc.created[0])
	assert.Equal(t, modeBook, m.mode)
	assert.Equal(t, 3, m.book.Len())
	assert.Equal(t, "Groceries", m.book.Notes()[0].Title)
	assert.Equal(t, msgNoteCreated, m.status)

	require.NotNil(t, clearCmd)
	m = update(t, m, clearCmd())
	assert.Empty(t, m.status)
}

func TestBookModel_CreateBlankTitle(t *testing.T) {
	svc := &fakeNoteService{}
	m := loadedModel(t, svc, 0)

	m = update(t, m, runes("n"))
	m = update(t, m, runes("   "))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Empty(t, svc.created)
	assert.Equal(t, msgTitleRequired, m.form.errMsg)
	assert.Contains(t, m.View(), msgTitleRequired)
}

func TestBookModel_CreateFailure(t *testing.T) {
	svc := &fakeNoteService{createFn: func(context.Context, models.NoteDraft) (models.Note, error) {
		return models.Note{}, fmt.Errorf("create note: %w", service.ErrServerUnavailable)
	}}
	m := loadedModel(t, svc, 1)

	m = update(t, m, runes("n"))
	m = update(t, m, runes("Title"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m, clearCmd := updateCmd(t, m, cmd())

	assert.Nil(t, clearCmd, "failures stay on screen")
	assert.Equal(t, msgCreateFailed, m.status)
	assert.True(t, m.statusErr)
	assert.Equal(t, modeForm, m.mode)
	assert.Equal(t, msgServerUnavailable, m.form.errMsg)
	assert.Equal(t, 1, m.book.Len())
}

func TestBookModel_EditNote(t *testing.T) {
	var gotID string
	var gotDraft models.NoteDraft
	svc := &fakeNoteService{updateFn: func(_ context.Context, id string, draft models.NoteDraft) (models.Note, error) {
		gotID, gotDraft = id, draft
		return models.Note{ID: id, Title: draft.Title, Content: draft.Content}, nil
	}}
	m := loadedModel(t, svc, 3)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, runes("e"))
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, "n1", m.form.editingID)
	assert.Equal(t, "Note 1", m.form.title.Value())
	assert.Contains(t, m.View(), "EDIT NOTE")

	m = update(t, m, runes("!"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Equal(t, "n1", gotID)
	assert.Equal(t, "Note 1!", gotDraft.Title)
	assert.Equal(t, "content 1", gotDraft.Content)
	assert.Equal(t, msgNoteUpdated, m.status)
	assert.Equal(t, "Note 1!", m.book.Notes()[1].Title)
	assert.Equal(t, modeBook, m.mode)
}

func TestBookModel_EditFailure(t *testing.T) {
	svc := &fakeNoteService{updateFn: func(context.Context, string, models.NoteDraft) (models.Note, error) {
		return models.Note{}, errors.New("boom")
	}}
	m := loadedModel(t, svc, 1)

	m = update(t, m, runes("e"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Equal(t, msgUpdateFailed, m.status)
	assert.Equal(t, "Note 0", m.book.Notes()[0].Title)
}

func TestBookModel_FormEscCancels(t *testing.T) {
	svc := &fakeNoteService{}
	m := loadedModel(t, svc, 1)

	m = update(t, m, runes("n"))
	m = update(t, m, runes("q"))
	assert.Equal(t, modeForm, m.mode, "q types into the form")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBook, m.mode)
	assert.Empty(t, svc.created)
}

func TestBookModel_DeleteNote(t *testing.T) {
	svc := &fakeNoteService{}
	m := loadedModel(t, svc, 3)

	m = update(t, m, runes("d"))
	require.Equal(t, modeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), "Delete this note?")

	m, cmd := updateCmd(t, m, runes("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, modeBook, m.mode)
	assert.Empty(t, svc.deleted)

	m = update(t, m, runes("d"))
	m, cmd = updateCmd(t, m, runes("y"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Equal(t, []string{"n0"}, svc.deleted)
	assert.Equal(t, 2, m.book.Len())
	assert.Equal(t, msgNoteDeleted, m.status)
	assert.Contains(t, m.viewFooter(), "Notes loaded: 2")
	assert.Contains(t, m.View(), "Spread 1/1")
}

func TestBookModel_DeleteFailure(t *testing.T) {
	svc := &fakeNoteService{deleteFn: func(context.Context, string) error {
		return fmt.Errorf("delete note: %w", service.ErrServerUnavailable)
	}}
	m := loadedModel(t, svc, 2)

	m = update(t, m, runes("d"))
	m, cmd := updateCmd(t, m, runes("y"))
	m = update(t, m, cmd())

	assert.Equal(t, msgDeleteFailed+": "+msgServerUnavailable, m.status)
	assert.Equal(t, 2, m.book.Len())
}

func TestBookModel_DeleteSkipsNoteGoneAfterReload(t *testing.T) {
	svc := &fakeNoteService{}
	m := loadedModel(t, svc, 2)

	m = update(t, m, runes("d"))
	require.Equal(t, modeConfirmDelete, m.mode)
	m = update(t, m, notesLoadedMsg{notes: makeNotes(2)[1:]})

	m, cmd := updateCmd(t, m, runes("y"))
	assert.Equal(t, modeBook, m.mode)
	assert.Equal(t, msgNoNoteSelected, m.status)
	assert.Empty(t, svc.deleted)
	_ = findMsg[clearStatusMsg](t, cmd)
}

func TestBookModel_EditAndDeleteNeedNote(t *testing.T) {
	m := loadedModel(t, &fakeNoteService{}, 0)

	m = update(t, m, runes("e"))
	assert.Equal(t, modeBook, m.mode)
	assert.Equal(t, msgNoNoteSelected, m.status)

	m = update(t, m, runes("d"))
	assert.Equal(t, modeBook, m.mode)
}

func TestBookModel_StaleStatusTimer(t *testing.T) {
	m := loadedModel(t, &fakeNoteService{}, 1)

	m, first := updateCmd(t, m, noteCreatedMsg{note: models.Note{ID: "a", Title: "A"}})
	m, _ = updateCmd(t, m, noteDeletedMsg{id: "a"})
	require.NotNil(t, first)

	m = update(t, m, first())
	assert.Equal(t, msgNoteDeleted, m.status)
}

func TestBookModel_Copy(t *testing.T) {
	var copied string
	m := loadedModel(t, &fakeNoteService{}, 2)
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	m = update(t, m, runes("c"))
	assert.Equal(t, "content 0", copied)
	assert.Equal(t, msgCopied, m.status)

	m.writeClipboard = func(string) error { return errors.New("no clipboard") }
	m = update(t, m, runes("c"))
	assert.Equal(t, "Copy failed: no clipboard", m.status)
	assert.True(t, m.statusErr)
}

func TestBookModel_About(t *testing.T) {
	m := loadedModel(t, &fakeNoteService{}, 1)

	m, cmd := updateCmd(t, m, runes("v"))
	require.NotNil(t, cmd)
	require.Equal(t, modeAbout, m.mode)
	m = update(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "Version: 0.1.0")
	assert.Contains(t, view, "Commit: N/A")
	assert.Contains(t, view, "Server version: 1.2.3")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBook, m.mode)
}

func TestBookModel_Quit(t *testing.T) {
	m := loadedModel(t, &fakeNoteService{}, 1)

	_, cmd := updateCmd(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = update(t, m, runes("n"))
	_, cmd = updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "sentinel", err: fmt.Errorf("list: %w", service.ErrServerUnavailable), want: msgServerUnavailable},
		{name: "dial", err: errors.New("dial tcp 127.0.0.1:4000: connect: connection refused"), want: msgServerUnavailable},
		{name: "timeout", err: errors.New("context deadline exceeded"), want: msgServerUnavailable},
		{name: "other", err: errors.New("title is required"), want: "title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeServerUnavailableError(tt.err))
		})
	}
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, nil)
	assert.ErrorIs(t, err, errNoServices)

	ui, err := New(&service.ClientServices{
		NoteService:    &fakeNoteService{},
		AppInfoService: fakeAppInfoService{},
	}, models.AppBuildInfo{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, ui)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "привет...", fitText("привет мир", 9))
}

func TestClipLines(t *testing.T) {
	assert.Equal(t, "a\nb", clipLines("a\nb", 3))
	assert.Equal(t, "a\nb\n...", clipLines("a\nb\nc\nd", 3))
}
