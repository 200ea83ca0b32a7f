package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-book/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldTitle = iota
	formFieldContent
)

// noteFormModel is the composer when editingID is empty and the editor
// otherwise.
type noteFormModel struct {
	title      textinput.Model
	content    textarea.Model
	focus      int
	editingID  string
	errMsg     string
	submitting bool
}

func newNoteFormModel(note *models.Note) noteFormModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 50
	title.Prompt = ""

	content := textarea.New()
	content.Placeholder = "Write your note..."
	content.ShowLineNumbers = false
	content.SetWidth(56)
	content.SetHeight(8)

	m := noteFormModel{title: title, content: content}
	if note != nil {
		m.editingID = note.ID
		m.title.SetValue(note.Title)
		m.content.SetValue(note.Content)
	}
	m.title.Focus()
	return m
}

func (m noteFormModel) editing() bool {
	return m.editingID != ""
}

func (m noteFormModel) draft() models.NoteDraft {
	return models.NoteDraft{
		Title:   strings.TrimSpace(m.title.Value()),
		Content: m.content.Value(),
	}
}

func (m *noteFormModel) switchFocus() {
	if m.focus == formFieldTitle {
		m.focus = formFieldContent
		m.title.Blur()
		m.content.Focus()
		return
	}
	m.focus = formFieldTitle
	m.content.Blur()
	m.title.Focus()
}

func (m noteFormModel) Update(msg tea.Msg) (noteFormModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == formFieldTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m noteFormModel) View() string {
	heading := "NEW NOTE"
	if m.editing() {
		heading = "EDIT NOTE"
	}

	var b strings.Builder
	b.WriteString("Title\n")
	b.WriteString("[" + m.title.View() + "]\n\n")
	b.WriteString("Content\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")

	switch {
	case m.submitting:
		b.WriteString("\nSaving...")
	case m.errMsg != "":
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	return renderPage(heading, b.String(), "ctrl+s: save │ tab: next field │ esc: cancel")
}
