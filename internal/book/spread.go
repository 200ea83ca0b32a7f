package book

import "github.com/MKhiriev/go-notes-book/models"

// PagesPerSpread is the number of notes shown side by side.
const PagesPerSpread = 2

// Spread is one pair of facing pages. Right is nil when the list has an odd
// number of notes and this is the last spread; both are nil for the single
// spread of an empty book.
type Spread struct {
	Index int
	Left  *models.Note
	Right *models.Note
}

// TotalSpreads returns max(1, ceil(n/2)).
func TotalSpreads(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PagesPerSpread - 1) / PagesPerSpread
}

// SpreadAt returns spread i of notes. Pages past the end of the list are nil.
func SpreadAt(notes []models.Note, i int) Spread {
	s := Spread{Index: i}
	if i < 0 {
		return s
	}

	left := i * PagesPerSpread
	if left < len(notes) {
		s.Left = &notes[left]
	}
	if left+1 < len(notes) {
		s.Right = &notes[left+1]
	}
	return s
}
