package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fxledger/internal/currency"
	"fxledger/internal/rates"
)

// RatesHandler serves the public rate-lookup endpoints. These never touch
// the store; they pass straight through to the provider.
type RatesHandler struct {
	rates  *rates.Client
	logger *slog.Logger
}

func NewRatesHandler(rc *rates.Client, logger *slog.Logger) *RatesHandler {
	return &RatesHandler{rates: rc, logger: logger}
}

func (h *RatesHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	base, target, ok := h.resolvePair(w, r)
	if !ok {
		return
	}

	rate, err := h.rates.Latest(r.Context(), base, target)
	if err != nil {
		h.logger.Warn("rate lookup", "base", base, "target", target, "error", err)
		writeError(w, http.StatusBadGateway, "rate provider unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"rate": rate,
		"date": time.Now().UTC().Format("2006-01-02"),
	})
}

func (h *RatesHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	codes, err := h.rates.Currencies(r.Context())
	if err != nil {
		h.logger.Warn("currencies lookup", "error", err)
		writeError(w, http.StatusBadGateway, "rate provider unavailable")
		return
	}
	writeJSON(w, http.StatusOK, codes)
}

func (h *RatesHandler) Trends(w http.ResponseWriter, r *http.Request) {
	base, target, ok := h.resolvePair(w, r)
	if !ok {
		return
	}

	series, err := h.rates.Monthly(r.Context(), base, target)
	if err != nil {
		h.logger.Warn("monthly rates lookup", "base", base, "target", target, "error", err)
		writeError(w, http.StatusBadGateway, "rate provider unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"trend": rates.Trend(series),
		"rates": series,
	})
}

func (h *RatesHandler) resolvePair(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	baseParam := r.URL.Query().Get("base")
	targetParam := r.URL.Query().Get("target")
	if baseParam == "" || targetParam == "" {
		writeError(w, http.StatusBadRequest, "base and target query parameters are required")
		return "", "", false
	}

	base, err := currency.Resolve(baseParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown base country or currency")
		return "", "", false
	}
	target, err := currency.Resolve(targetParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown target country or currency")
		return "", "", false
	}
	return base, target, true
}
