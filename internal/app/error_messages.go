// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// notes server handlers, the HTTP adapter and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies as {"error": "..."} to describe the outcome of an
// operation. Keeping them in one place lets the client match on the exact
// wording the server produced.
package app

const (
	// MsgNotFound is returned when a note id does not exist, and for any
	// route or method the API does not serve.
	MsgNotFound = "Not found"

	// MsgTitleRequired is returned when a create request has no usable title.
	MsgTitleRequired = "Title is required"

	// MsgInvalidTitle is returned when an update request carries a title that
	// is blank or not a string.
	MsgInvalidTitle = "Title must be a non-empty string"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgNoteAlreadyExists is returned when an insert collides with an
	// existing note id.
	MsgNoteAlreadyExists = "Note already exists"

	// MsgServiceUnavailable is returned when the database cannot be reached.
	MsgServiceUnavailable = "Service unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgBackendRunning is the message of the root status route.
	MsgBackendRunning = "Notes API - backend running"
)
