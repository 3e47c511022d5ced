// internal/transport/http/handlers.go
package http

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"ticket-scout/internal/common/cache"
	apperrors "ticket-scout/internal/common/errors"
	"ticket-scout/internal/common/logger"
	"ticket-scout/internal/engine"
)

type handler struct {
	engine *engine.Engine
	cache  cache.Store
	logger logger.Logger
}

type errorResponse struct {
	Success bool                   `json:"success"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details string                 `json:"details,omitempty"`
	Meta    map[string]interface{} `json:"metadata,omitempty"`
}

func (h *handler) findEvents(w http.ResponseWriter, r *http.Request) {
	params, ok := h.decodeParams(w, r)
	if !ok {
		return
	}
	result, err := h.engine.FindEvents(r.Context(), params)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) findMatchup(w http.ResponseWriter, r *http.Request) {
	params, ok := h.decodeParams(w, r)
	if !ok {
		return
	}
	result, err := h.engine.FindMatchup(r.Context(), params)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) getEventListings(w http.ResponseWriter, r *http.Request) {
	params, ok := h.decodeParams(w, r)
	if !ok {
		return
	}
	result, err := h.engine.GetEventListings(r.Context(), params)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) recommendTickets(w http.ResponseWriter, r *http.Request) {
	params, ok := h.decodeParams(w, r)
	if !ok {
		return
	}
	result, err := h.engine.RecommendTickets(r.Context(), params)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{
		"status": "healthy",
	}
	if stats, err := h.cache.Stats(r.Context()); err == nil {
		payload["cache"] = stats
	}
	h.writeJSON(w, http.StatusOK, payload)
}

// decodeParams reads the flat JSON parameter object. An empty body is treated
// as an empty object so the schema reports the missing fields.
func (h *handler) decodeParams(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	params := map[string]interface{}{}
	if r.Body == nil {
		return params, true
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && !stderrors.Is(err, io.EOF) {
		h.writeError(w, apperrors.NewInvalidParametersError("request body is not a JSON object"))
		return nil, false
	}
	return params, true
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	resp := errorResponse{Success: false, Code: "INTERNAL", Message: err.Error()}

	var stdErr *apperrors.StandardError
	if stderrors.As(err, &stdErr) {
		resp.Code = string(stdErr.Code)
		resp.Message = stdErr.Message
		resp.Details = stdErr.Details
		resp.Meta = stdErr.Metadata
		status = statusFor(stdErr.Code)
	}

	h.logger.Warn("operation failed", map[string]interface{}{
		"code":   resp.Code,
		"status": status,
		"error":  err.Error(),
	})
	h.writeJSON(w, status, resp)
}

func statusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidParameters:
		return http.StatusBadRequest
	case apperrors.ErrCodeEventNotFound, apperrors.ErrCodeNoEventsFound:
		return http.StatusNotFound
	case apperrors.ErrCodeFeedRateLimited:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeFeedTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeFeedRequestFailed, apperrors.ErrCodeListingsFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("response encoding failed", map[string]interface{}{"error": err.Error()})
	}
}
