package handler

import (
	"log/slog"
	"net/http"

	"fxledger/internal/auth"
	"fxledger/internal/model"
	"fxledger/internal/store"
)

type RecordHandler struct {
	records *store.RecordStore
	logger  *slog.Logger
}

func NewRecordHandler(rs *store.RecordStore, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{records: rs, logger: logger}
}

// List returns the authenticated user's conversion history, oldest first.
// A user with no conversions gets an empty array, not an error.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	ac, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid session")
		return
	}

	records, err := h.records.ListByUser(ac.User.ID)
	if err != nil {
		h.logger.Error("list records", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list records")
		return
	}
	if records == nil {
		records = []model.ConversionRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ac, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid session")
		return
	}

	deleted, err := h.records.Delete(r.PathValue("id"), ac.User.ID)
	if err != nil {
		h.logger.Error("delete record", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete record")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
