// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-book/internal/app"
	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/utils"
)

// notFound answers every unknown path with 404 and the JSON error body the
// note routes use.
func notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "notFound").
		Str("path", r.URL.Path).
		Msg("no route matched")

	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

// methodNotAllowed replaces chi's 405 response. A known path requested with
// an unsupported method is reported as 404, so callers cannot tell it apart
// from a path that does not exist.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "methodNotAllowed").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not served for path")

	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
