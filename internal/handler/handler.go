// Package handler exposes the planner service as a JSON API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/SanderGeraedts/InkoopPlanner/internal/logger"
	"github.com/SanderGeraedts/InkoopPlanner/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Broadcaster notifies live screens that an order changed.
// Satisfied by *ws.Hub.
type Broadcaster interface {
	OrderUpdated(orderID uuid.UUID)
}

// nopBroadcaster is used when no hub is configured.
type nopBroadcaster struct{}

func (nopBroadcaster) OrderUpdated(uuid.UUID) {}

func orNop(b Broadcaster) Broadcaster {
	if b == nil {
		return nopBroadcaster{}
	}
	return b
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", zap.Error(err))
	}
}

func writeErrorMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeError maps service errors onto status codes. Anything unrecognised is
// logged and reported as a 500 without detail.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeErrorMessage(w, r, http.StatusNotFound, "not found")
	case isValidationError(err):
		writeErrorMessage(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		writeErrorMessage(w, r, http.StatusConflict, err.Error())
	default:
		logger.FromContext(r.Context()).Error(op, zap.Error(err))
		writeErrorMessage(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrInvalidQuantity) ||
		errors.Is(err, service.ErrQuantityTooLarge) ||
		errors.Is(err, service.ErrUnknownProduct) ||
		errors.Is(err, service.ErrEmptyProductName) ||
		errors.Is(err, service.ErrInvalidCategory) ||
		errors.Is(err, service.ErrInvalidListType)
}

// uuidParam parses a UUID path parameter, writing a 400 when it is invalid.
func uuidParam(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeErrorMessage(w, r, http.StatusBadRequest, "invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes a JSON body into v. An empty body leaves v untouched
// when optional is set.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}, optional bool) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	writeErrorMessage(w, r, http.StatusBadRequest, "invalid request body")
	return false
}
