package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/repository"
	"github.com/m-mizutani/pipeboard/pkg/utils/errutil"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

// maxBodySize limits webhook and API request bodies.
const maxBodySize = 8 << 20

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep:
	// go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response body is JSON encoded
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to encode response", slog.Any("error", err))
		code = http.StatusInternalServerError
		raw = []byte(`{"success":false,"error":"failed to encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

// writeOK writes {"success": true, key: v}. An empty key writes only the flag.
func writeOK(w http.ResponseWriter, key string, v any) {
	body := map[string]any{"success": true}
	if key != "" {
		body[key] = v
	}
	writeJSON(w, http.StatusOK, body)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrValidationFailed),
		errors.Is(err, types.ErrMalformedPayload),
		errors.Is(err, types.ErrInvalidOption),
		errors.Is(err, repository.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrCollaboratorUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err as {"success": false, "error": msg}. Server side failures
// are sent to Sentry, client errors are only logged.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	code := errorStatus(err)
	if code >= http.StatusInternalServerError {
		errutil.HandleError(r.Context(), msg, err)
	} else {
		errutil.Warn(r.Context(), msg, err)
	}

	writeJSON(w, code, map[string]any{
		"success": false,
		"error":   err.Error(),
	})
}

func decodeBody(r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	if err := decoder.Decode(v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed.Wrap(err), "invalid JSON body")
	}
	return nil
}
