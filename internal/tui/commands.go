package tui

import (
	"time"

	"github.com/MKhiriev/go-notes-book/internal/book"
	"github.com/MKhiriev/go-notes-book/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m bookModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		notes, err := svc.List(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m bookModel) cmdCreate(draft models.NoteDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		note, err := svc.Create(ctx, draft)
		return noteCreatedMsg{note: note, err: err}
	}
}

func (m bookModel) cmdUpdate(id string, draft models.NoteDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		note, err := svc.Update(ctx, id, draft)
		return noteUpdatedMsg{note: note, err: err}
	}
}

func (m bookModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		return noteDeletedMsg{id: id, err: err}
	}
}

func (m bookModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AppInfoService

	return func() tea.Msg {
		version, err := svc.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func (m bookModel) cmdFinishTurn(turn book.Turn) tea.Cmd {
	return m.tick(book.TurnDelay, func(time.Time) tea.Msg {
		return turnDoneMsg{turn: turn}
	})
}

func (m bookModel) cmdClearStatus(id int, after time.Duration) tea.Cmd {
	return m.tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
