package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-notes-book/internal/book"
	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/service"
	"github.com/MKhiriev/go-notes-book/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	createdStatusTTL = 2300 * time.Millisecond
	updatedStatusTTL = 2000 * time.Millisecond
	deletedStatusTTL = 2000 * time.Millisecond
	infoStatusTTL    = 2000 * time.Millisecond
)

const (
	msgNoteCreated    = "Note created"
	msgNoteUpdated    = "Note updated"
	msgNoteDeleted    = "Note deleted"
	msgCreateFailed   = "Failed to create note"
	msgUpdateFailed   = "Failed to update"
	msgDeleteFailed   = "Failed to delete"
	msgLoadFailed     = "Failed to load notes"
	msgTitleRequired  = "Title is required"
	msgCopied         = "Copied to clipboard"
	msgNothingToCopy  = "Nothing to copy"
	msgNoNoteSelected = "No note on this page"
)

type viewMode int

const (
	modeBook viewMode = iota
	modeForm
	modeConfirmDelete
	modeAbout
)

const (
	pageLeft  = 0
	pageRight = 1
)

type bookModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	book  *book.Book
	focus int
	mode  viewMode

	loading       bool
	spinner       spinner.Model
	form          noteFormModel
	confirm       confirmModel
	errOverlay    errorOverlayModel
	serverVersion string

	status    string
	statusErr bool
	statusID  int

	width  int
	height int

	writeClipboard func(string) error
	tick           func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

func newBookModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) bookModel {
	if log == nil {
		log = logger.Nop()
	}
	return bookModel{
		ctx:            ctx,
		services:       services,
		buildInfo:      buildInfo,
		logger:         log,
		book:           book.New(),
		loading:        true,
		spinner:        spinner.New(spinner.WithSpinner(spinner.Dot)),
		writeClipboard: clipboard.WriteAll,
		tick:           tea.Tick,
	}
}

func (m bookModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadNotes(), m.spinner.Tick)
}

func (m bookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case notesLoadedMsg:
		return m.onNotesLoaded(msg)
	case noteCreatedMsg:
		return m.onNoteCreated(msg)
	case noteUpdatedMsg:
		return m.onNoteUpdated(msg)
	case noteDeletedMsg:
		return m.onNoteDeleted(msg)
	case serverVersionMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("server version is not available")
			m.serverVersion = ""
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil
	case turnDoneMsg:
		m.book.Finish(msg.turn)
		return m, nil
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.onKey(msg)
	}

	if m.mode == modeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m bookModel) onNotesLoaded(msg notesLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.logger.Err(msg.err).Msg("failed to load notes")
		m.errOverlay = errorOverlayModel{message: humanizeServerUnavailableError(msg.err)}
		cmd := m.setError(msgLoadFailed)
		return m, cmd
	}
	m.book.Load(msg.notes)
	m.focus = pageLeft
	m.logger.Debug().Int("count", m.book.Len()).Uint64("revision", m.book.Revision()).Msg("notes loaded")
	return m, nil
}

func (m bookModel) onNoteCreated(msg noteCreatedMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrValidationTitleRequired) || errors.Is(msg.err, service.ErrValidationInvalidTitle) {
			m.form.errMsg = msgTitleRequired
			return m, nil
		}
		m.logger.Err(msg.err).Msg("failed to create note")
		m.form.errMsg = humanizeServerUnavailableError(msg.err)
		cmd := m.setError(msgCreateFailed)
		return m, cmd
	}

	m.book.Created(msg.note)
	m.focus = pageLeft
	m.mode = modeBook
	cmd := m.setStatus(msgNoteCreated, createdStatusTTL)
	return m, cmd
}

func (m bookModel) onNoteUpdated(msg noteUpdatedMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrValidationTitleRequired) || errors.Is(msg.err, service.ErrValidationInvalidTitle) {
			m.form.errMsg = msgTitleRequired
			return m, nil
		}
		m.logger.Err(msg.err).Str("id", m.form.editingID).Msg("failed to update note")
		m.form.errMsg = humanizeServerUnavailableError(msg.err)
		cmd := m.setError(msgUpdateFailed)
		return m, cmd
	}

	m.book.Updated(msg.note)
	m.focus = pageLeft
	m.mode = modeBook
	cmd := m.setStatus(msgNoteUpdated, updatedStatusTTL)
	return m, cmd
}

func (m bookModel) onNoteDeleted(msg noteDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Err(msg.err).Str("id", msg.id).Msg("failed to delete note")
		cmd := m.setError(msgDeleteFailed + ": " + humanizeServerUnavailableError(msg.err))
		return m, cmd
	}

	m.book.Deleted(msg.id)
	m.focus = pageLeft
	cmd := m.setStatus(msgNoteDeleted, deletedStatusTTL)
	return m, cmd
}

func (m bookModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.errOverlay.active() {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errOverlay = errorOverlayModel{}
		}
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.onFormKey(msg)
	case modeConfirmDelete:
		return m.onConfirmKey(msg)
	case modeAbout:
		if key.Matches(msg, keys.esc, keys.version, keys.enter) {
			m.mode = modeBook
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.prev):
		if turn, ok := m.book.Prev(); ok {
			m.focus = pageLeft
			return m, m.cmdFinishTurn(turn)
		}
	case key.Matches(msg, keys.next):
		if turn, ok := m.book.Next(); ok {
			m.focus = pageLeft
			return m, m.cmdFinishTurn(turn)
		}
	case key.Matches(msg, keys.tab):
		m.toggleFocus()
	case key.Matches(msg, keys.newNote):
		m.form = newNoteFormModel(nil)
		m.mode = modeForm
	case key.Matches(msg, keys.edit):
		note, ok := m.focusedNote()
		if !ok {
			cmd := m.setStatus(msgNoNoteSelected, infoStatusTTL)
			return m, cmd
		}
		m.form = newNoteFormModel(&note)
		m.mode = modeForm
	case key.Matches(msg, keys.delete):
		note, ok := m.focusedNote()
		if !ok {
			cmd := m.setStatus(msgNoNoteSelected, infoStatusTTL)
			return m, cmd
		}
		m.confirm = confirmModel{noteID: note.ID, title: note.Title}
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		cmd := m.copyFocused()
		return m, cmd
	case key.Matches(msg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.cmdLoadNotes(), m.spinner.Tick)
	case key.Matches(msg, keys.version):
		m.mode = modeAbout
		return m, m.cmdServerVersion()
	}

	return m, nil
}

func (m bookModel) onFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBook
		m.form = noteFormModel{}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.switchFocus()
		return m, nil
	case key.Matches(msg, keys.save):
		if m.form.submitting {
			return m, nil
		}
		draft := m.form.draft()
		if draft.Title == "" {
			m.form.errMsg = msgTitleRequired
			return m, nil
		}
		m.form.errMsg = ""
		m.form.submitting = true
		if m.form.editing() {
			return m, m.cmdUpdate(m.form.editingID, draft)
		}
		return m, m.cmdCreate(draft)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m bookModel) onConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		id := m.confirm.noteID
		m.confirm = confirmModel{}
		m.mode = modeBook
		if _, ok := m.book.Find(id); !ok {
			cmd := m.setStatus(msgNoNoteSelected, infoStatusTTL)
			return m, cmd
		}
		return m, m.cmdDelete(id)
	case key.Matches(msg, keys.no):
		m.confirm = confirmModel{}
		m.mode = modeBook
	}
	return m, nil
}

func (m *bookModel) toggleFocus() {
	if m.focus == pageLeft {
		if _, ok := m.book.Page(pageRight); ok {
			m.focus = pageRight
		}
		return
	}
	m.focus = pageLeft
}

// focusedNote is the note on the focused page. Nothing is focused while a
// turn animates.
func (m bookModel) focusedNote() (models.Note, bool) {
	if m.book.Navigator().Animating() {
		return models.Note{}, false
	}
	return m.book.Page(m.focus)
}

func (m *bookModel) copyFocused() tea.Cmd {
	note, ok := m.focusedNote()
	if !ok || note.Content == "" {
		return m.setStatus(msgNothingToCopy, infoStatusTTL)
	}
	if err := m.writeClipboard(note.Content); err != nil {
		m.logger.Err(err).Msg("clipboard write failed")
		return m.setError("Copy failed: " + err.Error())
	}
	return m.setStatus(msgCopied, infoStatusTTL)
}

// setStatus shows text and schedules its removal. A later status bumps
// statusID, so an older timer can never clear it.
func (m *bookModel) setStatus(text string, ttl time.Duration) tea.Cmd {
	m.statusID++
	m.status = text
	m.statusErr = false
	return m.cmdClearStatus(m.statusID, ttl)
}

// setError shows text until another status replaces it.
func (m *bookModel) setError(text string) tea.Cmd {
	m.statusID++
	m.status = text
	m.statusErr = true
	return nil
}
