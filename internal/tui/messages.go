package tui

import (
	"github.com/MKhiriev/go-notes-book/internal/book"
	"github.com/MKhiriev/go-notes-book/models"
)

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteCreatedMsg struct {
	note models.Note
	err  error
}

type noteUpdatedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type serverVersionMsg struct {
	version string
	err     error
}

// turnDoneMsg arrives book.TurnDelay after a page turn started.
type turnDoneMsg struct {
	turn book.Turn
}

// clearStatusMsg clears the status line only if it still shows message id.
type clearStatusMsg struct {
	id int
}
