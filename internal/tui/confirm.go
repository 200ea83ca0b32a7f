package tui

type confirmModel struct {
	noteID string
	title  string
}

func (m confirmModel) View() string {
	content := "Delete this note?\n\n"
	content += titleStyle.Render(fitText(m.title, 40)) + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
