package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"messages/internal/middleware"
	"messages/internal/service"
)

type UserMessageHandler struct {
	messages service.UserMessageService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewUserMessageHandler(messages service.UserMessageService, validate *validator.Validate, logger *slog.Logger) *UserMessageHandler {
	return &UserMessageHandler{messages, validate, logger}
}

// GetPersonalMessages handles GET /api/user/personal-messages. Unlike
// the posting endpoints, this read requires an authenticated caller.
func (h *UserMessageHandler) GetPersonalMessages(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFrom(r.Context())
	if caller == nil {
		writeJSON(w, http.StatusUnauthorized, messageResponse{"Authorization has been denied for this request."})
		return
	}

	views, err := h.messages.ListPersonalMessages(*caller)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// SendPersonalMessage handles POST /api/user/personal-messages.
func (h *UserMessageHandler) SendPersonalMessage(w http.ResponseWriter, r *http.Request) {
	var payload userMessageBindingModel
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := checkPayload(h.validate, payload); err != nil {
		respondError(w, h.logger, err)
		return
	}

	caller := middleware.IdentityFrom(r.Context())
	receipt, err := h.messages.SendPersonalMessage(payload.Recipient, payload.Text, caller)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if receipt.Sender.Anonymous() {
		writeJSON(w, http.StatusOK, postReceiptViewModel{
			ID:      receipt.ID,
			Message: fmt.Sprintf("Anonymous message sent successfully to user %s.", payload.Recipient),
		})
		return
	}
	writeJSON(w, http.StatusOK, postReceiptViewModel{
		ID:      receipt.ID,
		Sender:  receipt.Sender.Username(),
		Message: fmt.Sprintf("Message sent successfully to user %s.", payload.Recipient),
	})
}
