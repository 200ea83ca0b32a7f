package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-notes-book/internal/app"
	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/utils"
	"github.com/MKhiriev/go-notes-book/models"
	"github.com/go-chi/chi/v5"
)

const noteIDParam = "id"

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	notes, err := h.notes.ListNotes(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.listNotes")
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	if _, err = utils.WriteJSON(w, notes, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error writing response")
	}
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, noteIDParam)

	note, err := h.notes.GetNote(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.getNote")
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Msg("error writing response")
	}
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	input, err := decodeNoteInput(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	note, err := h.notes.CreateNote(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.createNote")
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error writing response")
	}
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, noteIDParam)

	input, err := decodeNoteInput(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	note, err := h.notes.UpdateNote(r.Context(), id, input)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.updateNote")
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("error writing response")
	}
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, noteIDParam)

	if err := h.notes.DeleteNote(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err, "*Handler.deleteNote")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeNoteInput reads the request body. An empty body is an empty input.
func decodeNoteInput(r *http.Request) (models.NoteInput, error) {
	var input models.NoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		return models.NoteInput{}, err
	}
	return input, nil
}

// writeServiceError maps err to a status and writes the {"error": ...} body.
// Server-side failures are logged at error level, client mistakes at debug.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
