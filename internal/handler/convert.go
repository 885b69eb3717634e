package handler

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"fxledger/internal/auth"
	"fxledger/internal/currency"
	"fxledger/internal/rates"
	"fxledger/internal/store"
)

type ConvertHandler struct {
	records *store.RecordStore
	rates   *rates.Client
	logger  *slog.Logger
}

func NewConvertHandler(rs *store.RecordStore, rc *rates.Client, logger *slog.Logger) *ConvertHandler {
	return &ConvertHandler{records: rs, rates: rc, logger: logger}
}

func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	ac, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid session")
		return
	}

	var req struct {
		BaseCountry   string  `json:"base_country"`
		TargetCountry string  `json:"target_country"`
		Amount        float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.BaseCountry = strings.TrimSpace(req.BaseCountry)
	req.TargetCountry = strings.TrimSpace(req.TargetCountry)
	if req.BaseCountry == "" || req.TargetCountry == "" || req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "base_country, target_country, and a positive amount are required")
		return
	}

	base, err := currency.Resolve(req.BaseCountry)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown base country or currency")
		return
	}
	target, err := currency.Resolve(req.TargetCountry)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown target country or currency")
		return
	}

	rate, err := h.rates.Latest(r.Context(), base, target)
	if err != nil {
		h.logger.Warn("rate lookup", "base", base, "target", target, "error", err)
		writeError(w, http.StatusBadGateway, "rate provider unavailable")
		return
	}

	converted := round4(req.Amount * rate)

	rec, err := h.records.Create(ac.User.ID, base, target, req.Amount, rate, converted)
	if err != nil {
		h.logger.Error("create record", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save conversion")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// round4 rounds to 4 decimal places, the precision conversion results are
// quoted and stored at.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
