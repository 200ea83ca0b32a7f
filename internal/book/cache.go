package book

import "github.com/MKhiriev/go-notes-book/models"

// Cache is the client's copy of the note list, newest first. It is patched
// from server responses and never refetches on its own.
//
// Revision increases on every change that replaces the list.
type Cache struct {
	notes    []models.Note
	revision uint64
}

// Notes returns the cached list. The slice must not be modified.
func (c *Cache) Notes() []models.Note { return c.notes }

// Len is the number of cached notes.
func (c *Cache) Len() int { return len(c.notes) }

// Revision increases every time the list changes.
func (c *Cache) Revision() uint64 { return c.revision }

// Replace swaps the whole list, as after a fetch.
func (c *Cache) Replace(notes []models.Note) {
	c.notes = append([]models.Note(nil), notes...)
	c.revision++
}

// Prepend puts a newly created note at the front.
func (c *Cache) Prepend(note models.Note) {
	notes := make([]models.Note, 0, len(c.notes)+1)
	notes = append(notes, note)
	c.notes = append(notes, c.notes...)
	c.revision++
}

// Swap replaces the note with the same id and reports whether one was found.
// The list is left untouched when the id is unknown.
func (c *Cache) Swap(note models.Note) bool {
	i := c.indexOf(note.ID)
	if i < 0 {
		return false
	}

	notes := append([]models.Note(nil), c.notes...)
	notes[i] = note
	c.notes = notes
	c.revision++
	return true
}

// Remove drops the note with the given id and reports whether one was found.
func (c *Cache) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}

	notes := make([]models.Note, 0, len(c.notes)-1)
	notes = append(notes, c.notes[:i]...)
	c.notes = append(notes, c.notes[i+1:]...)
	c.revision++
	return true
}

// Find returns the note with the given id.
func (c *Cache) Find(id string) (models.Note, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.notes[i], true
	}
	return models.Note{}, false
}

func (c *Cache) indexOf(id string) int {
	for i := range c.notes {
		if c.notes[i].ID == id {
			return i
		}
	}
	return -1
}
