// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-book/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: Notes Book\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())
	b.WriteString("\n")
	b.WriteString("Server version: ")
	b.WriteString(valueOrNA(serverVersion))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return models.NotAvailable
	}
	return v
}
