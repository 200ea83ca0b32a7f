package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-book/internal/book"
	"github.com/MKhiriev/go-notes-book/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	msgLoading    = "Loading..."
	msgEmptyBook  = "No notes yet, press n to add one."
	bookHotKeys   = "←/h →/l: turn │ tab: page │ n: new │ e: edit │ d: delete │ c: copy │ r: reload │ v: about │ q: quit"
	defaultPageW  = 36
	minPageW      = 20
	pageHeight    = 14
	createdLayout = "2006-01-02 15:04"
)

func (m bookModel) View() string {
	if m.errOverlay.active() {
		return appStyle.Render(m.errOverlay.View())
	}

	switch m.mode {
	case modeForm:
		return m.form.View()
	case modeConfirmDelete:
		return appStyle.Render(m.confirm.View())
	case modeAbout:
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	return renderPage("NOTES BOOK", m.viewBook(), bookHotKeys)
}

func (m bookModel) viewBook() string {
	var b strings.Builder

	switch {
	case m.loading && m.book.Len() == 0:
		b.WriteString(m.spinner.View() + " " + msgLoading)
	case m.book.Len() == 0:
		b.WriteString(msgEmptyBook)
	default:
		b.WriteString(m.viewSpread())
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewFooter())

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
	}

	return b.String()
}

func (m bookModel) viewSpread() string {
	spread := m.book.Current()
	nav := m.book.Navigator()
	width := m.pageWidth()

	left := renderNotePage(spread.Left, width, m.focus == pageLeft && !nav.Animating())
	right := renderNotePage(spread.Right, width, m.focus == pageRight && !nav.Animating())
	pages := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	if !nav.Animating() {
		return pages
	}

	indicator := "Turning page ›"
	if nav.Direction() == book.Prev {
		indicator = "‹ Turning page"
	}
	return pages + "\n" + turningStyle.Render(indicator)
}

func (m bookModel) viewFooter() string {
	return helpStyle.Render(fmt.Sprintf("Notes loaded: %d │ Spread %d/%d", m.book.Len(), m.book.Navigator().Index()+1, m.book.TotalSpreads()))
}

func (m bookModel) pageWidth() int {
	if m.width <= 0 {
		return defaultPageW
	}
	w := (m.width - 12) / 2
	if w < minPageW {
		return minPageW
	}
	return w
}

func renderNotePage(note *models.Note, width int, focused bool) string {
	style := pageStyle
	if focused {
		style = focusedPageStyle
	}
	style = style.Width(width).Height(pageHeight)

	if note == nil {
		return style.Render("")
	}

	var b strings.Builder
	b.WriteString(pageTitleStyle.Render(fitText(note.Title, width-2)))
	b.WriteString("\n")

	meta := note.CreatedAt.Local().Format(createdLayout)
	if note.UpdatedAt != nil {
		meta += " · edited " + note.UpdatedAt.Local().Format(createdLayout)
	}
	b.WriteString(pageMetaStyle.Render(meta))
	b.WriteString("\n\n")
	b.WriteString(clipLines(note.Content, pageHeight-3))

	return style.Render(b.String())
}
