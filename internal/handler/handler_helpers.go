package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"messages/internal/service"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var (
		validation *service.ValidationError
		notFound   *service.NotFoundError
		conflict   *service.ConflictError
	)
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, messageResponse{validation.Message})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, messageResponse{notFound.Message})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, messageResponse{conflict.Message})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, messageResponse{"Invalid username or password."})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{"Internal server error."})
	}
}

// decodeBody reads a JSON payload into dst, capping the body at 1MB.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &service.ValidationError{Message: "Missing or malformed request body."}
	}
	return nil
}

func checkPayload(validate *validator.Validate, payload any) error {
	if err := validate.Struct(payload); err != nil {
		return &service.ValidationError{Message: "Invalid request payload: " + err.Error()}
	}
	return nil
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, &service.ValidationError{Message: "Invalid channel id."}
	}
	return uint(id), nil
}
