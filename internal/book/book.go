package book

import "github.com/MKhiriev/go-notes-book/models"

// Book ties the cache to the navigator: every list change resets the
// navigator to spread 0 with the new spread count.
type Book struct {
	cache Cache
	nav   *Navigator
}

// New returns an empty book.
func New() *Book {
	return &Book{nav: NewNavigator(1)}
}

// Notes returns the cached notes, newest first.
func (b *Book) Notes() []models.Note {
	return b.cache.Notes()
}

// Len is the number of cached notes.
func (b *Book) Len() int {
	return b.cache.Len()
}

// Revision is the cache revision.
func (b *Book) Revision() uint64 {
	return b.cache.Revision()
}

// Navigator returns the spread navigator.
func (b *Book) Navigator() *Navigator {
	return b.nav
}

// TotalSpreads is the number of spreads, never less than one.
func (b *Book) TotalSpreads() int {
	return b.nav.Total()
}

// Find returns the cached note with the given id.
func (b *Book) Find(id string) (models.Note, bool) {
	return b.cache.Find(id)
}

// Current is the spread under the navigator's index.
func (b *Book) Current() Spread {
	return SpreadAt(b.Notes(), b.nav.Index())
}

// Page returns the note on the left (0) or right (1) page of the current
// spread.
func (b *Book) Page(side int) (models.Note, bool) {
	s := b.Current()
	var n *models.Note
	switch side {
	case 0:
		n = s.Left
	case 1:
		n = s.Right
	}
	if n == nil {
		return models.Note{}, false
	}
	return *n, true
}

// Next starts a turn to the following spread.
func (b *Book) Next() (Turn, bool) {
	return b.nav.Next()
}

// Prev starts a turn to the preceding spread.
func (b *Book) Prev() (Turn, bool) {
	return b.nav.Prev()
}

// Finish completes turn t if it is still the pending one.
func (b *Book) Finish(t Turn) bool {
	return b.nav.Finish(t)
}

// Load replaces the cached list with a fresh fetch.
func (b *Book) Load(notes []models.Note) {
	b.cache.Replace(notes)
	b.reset()
}

// Created prepends a note returned by the server.
func (b *Book) Created(note models.Note) {
	b.cache.Prepend(note)
	b.reset()
}

// Updated swaps in the server's copy of an edited note.
func (b *Book) Updated(note models.Note) bool {
	if !b.cache.Swap(note) {
		return false
	}
	b.reset()
	return true
}

// Deleted removes a note the server confirmed as deleted.
func (b *Book) Deleted(id string) bool {
	if !b.cache.Remove(id) {
		return false
	}
	b.reset()
	return true
}

func (b *Book) reset() {
	b.nav.Reset(TotalSpreads(b.cache.Len()))
}
