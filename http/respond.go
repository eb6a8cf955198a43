package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"wealth-planner/domain"
)

const calculationErrorMessage = "calculation error"

// withoutContext adapts the pure calculators to the handler signature.
func withoutContext[In, Out any](fn func(In) (Out, error)) func(context.Context, In) (Out, error) {
	return func(_ context.Context, input In) (Out, error) {
		return fn(input)
	}
}

// serveCalculation decodes the body over input, so fields the caller omits
// keep the default carried by input, and writes the result as JSON.
func serveCalculation[In, Out any](
	w http.ResponseWriter,
	r *http.Request,
	logger *slog.Logger,
	input In,
	calculate func(ctx context.Context, input In) (Out, error),
) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Debug("Error decoding request body", "path", r.URL.Path, "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := calculate(r.Context(), input)
	if err != nil {
		writeCalculationError(w, r, logger, err)
		return
	}

	writeJSON(w, logger, result)
}

func writeCalculationError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		http.Error(w, validationErr.Message, http.StatusBadRequest)
		return
	}

	logger.Error("Calculation failed", "path", r.URL.Path, "error", err)
	http.Error(w, calculationErrorMessage, http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("Error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("Error writing response", "error", err)
	}
}
