// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes-book/internal/service"
)

const msgServerUnavailable = "server is unavailable"

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrServerUnavailable) {
		return msgServerUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
