package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func viewTitle(title string) string {
	return fmt.Sprintf("%s\n%s\n", titleStyle.Render(title), uiDivider)
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(viewTitle(title))
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// fitText cuts v to at most max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// clipLines keeps at most n lines of v.
func clipLines(v string, n int) string {
	lines := strings.Split(v, "\n")
	if n <= 0 || len(lines) <= n {
		return v
	}
	return strings.Join(lines[:n-1], "\n") + "\n..."
}
