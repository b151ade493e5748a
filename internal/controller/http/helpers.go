package http

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

// readBody decodes a JSON or text/plain request body into T.
func readBody[T any](r *http.Request) (T, error) {
	var body T

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return body, fmt.Errorf("failed to read request body: %w", err)
	}
	defer r.Body.Close()

	if strings.HasPrefix(contentType, "text/plain") {
		switch any(body).(type) {
		case string:
			return any(strings.TrimSpace(string(bodyBytes))).(T), nil
		default:
			return body, fmt.Errorf("failed to read request body: %s", contentType)
		}
	}

	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return body, fmt.Errorf("failed to read request body %s: %w", contentType, err)
	}

	return body, nil
}

// writeJSON wraps data into a success envelope.
func writeJSON(w http.ResponseWriter, lg *zap.SugaredLogger, data any, statusCode int) {
	writeEnvelope(w, lg, model.Envelope{Success: true, Data: data}, statusCode)
}

func writeError(w http.ResponseWriter, lg *zap.SugaredLogger, apiErr *model.APIError) {
	writeEnvelope(w, lg, model.Envelope{Error: apiErr.Message}, apiErr.Code)
}

func writeEnvelope(w http.ResponseWriter, lg *zap.SugaredLogger, env model.Envelope, statusCode int) {
	response, err := json.Marshal(env)
	if err != nil {
		if lg != nil {
			lg.Errorf("failed to encode response: %v", err)
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(response)
}
