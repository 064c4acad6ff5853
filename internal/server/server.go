// Package server exposes the conversion engine over a small HTTP JSON API.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/TacitBlade/Beanstodiamondscalculator/internal/conversion"
	"github.com/TacitBlade/Beanstodiamondscalculator/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger  *zap.Logger
	version string
}

// NewHandler constructs the HTTP handler that serves the conversion API.
func NewHandler(logger *zap.Logger, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, version: trimmedVersion}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/convert", h.handleConvert)
	mux.HandleFunc("/api/optimize", h.handleOptimize)
	mux.HandleFunc("/api/tiers", h.handleTiers)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type convertResponse struct {
	Diamonds        int     `json:"diamonds"`
	Remainder       int     `json:"remainder"`
	DiamondsPerBean float64 `json:"diamondsPerBean"`
	Efficiency      float64 `json:"efficiency"`
	Tier            int     `json:"tier"`
	Tip             string  `json:"tip"`
}

type optimizeResponse struct {
	Breakdown     []conversion.Allocation `json:"breakdown"`
	TotalDiamonds int                     `json:"totalDiamonds"`
}

type tiersResponse struct {
	Tiers []conversion.TableRow `json:"tiers"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	beans, ok := h.beansParam(w, r)
	if !ok {
		return
	}

	result, err := conversion.Calculate(beans)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, conversion.ErrNoTierMatch) {
			status = http.StatusInternalServerError
		}
		h.respondError(w, status, err.Error())
		return
	}

	h.logger.Debug("conversion served",
		zap.String("op", "server.handleConvert"),
		zap.Int("beans", beans),
		zap.Int("diamonds", result.Diamonds),
		zap.Int("tier", result.Tier),
	)

	h.respondJSON(w, convertResponse{
		Diamonds:        result.Diamonds,
		Remainder:       result.Remainder,
		DiamondsPerBean: result.DiamondsPerBean,
		Efficiency:      result.Efficiency,
		Tier:            result.Tier,
		Tip:             conversion.EfficiencyTip(beans),
	})
}

func (h *handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	beans, ok := h.beansParam(w, r)
	if !ok {
		return
	}

	breakdown, total := conversion.Optimize(beans)

	h.logger.Debug("optimization served",
		zap.String("op", "server.handleOptimize"),
		zap.Int("beans", beans),
		zap.Int("totalDiamonds", total),
	)

	h.respondJSON(w, optimizeResponse{Breakdown: breakdown, TotalDiamonds: total})
}

func (h *handler) handleTiers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.respondJSON(w, tiersResponse{Tiers: conversion.TierTable()})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.respondJSON(w, map[string]string{"version": h.version})
}

// beansParam parses and validates the beans query parameter; on failure it
// writes a 400 response and returns false.
func (h *handler) beansParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	beans, err := validation.ParseBeans(r.URL.Query().Get("beans"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return beans, true
}

func (h *handler) respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.respondJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg}); err != nil {
		h.logger.Error("failed to encode error response",
			zap.String("op", "server.respondError"),
			zap.Error(err),
		)
	}
}
