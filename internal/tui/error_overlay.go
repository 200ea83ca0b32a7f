package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) active() bool {
	return m.message != ""
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
