package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"messages/internal/middleware"
	"messages/internal/service"
)

type postReceiptViewModel struct {
	ID      uint   `json:"id"`
	Sender  string `json:"sender,omitempty"`
	Message string `json:"message"`
}

type ChannelMessageHandler struct {
	messages service.ChannelMessageService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewChannelMessageHandler(messages service.ChannelMessageService, validate *validator.Validate, logger *slog.Logger) *ChannelMessageHandler {
	return &ChannelMessageHandler{messages, validate, logger}
}

// GetChannelMessages handles GET /api/channel-messages/{channelName}.
func (h *ChannelMessageHandler) GetChannelMessages(w http.ResponseWriter, r *http.Request) {
	channelName := mux.Vars(r)["channelName"]

	// A supplied-but-empty limit is invalid, so absence is detected on
	// the query itself rather than on the empty string.
	var limit *string
	if r.URL.Query().Has("limit") {
		value := r.URL.Query().Get("limit")
		limit = &value
	}

	views, err := h.messages.ListMessages(channelName, limit)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// SendChannelMessage handles POST /api/channel-messages/{channelName}.
func (h *ChannelMessageHandler) SendChannelMessage(w http.ResponseWriter, r *http.Request) {
	channelName := mux.Vars(r)["channelName"]

	var payload channelMessageBindingModel
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := checkPayload(h.validate, payload); err != nil {
		respondError(w, h.logger, err)
		return
	}

	caller := middleware.IdentityFrom(r.Context())
	receipt, err := h.messages.PostMessage(channelName, payload.Text, caller)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if receipt.Sender.Anonymous() {
		writeJSON(w, http.StatusOK, postReceiptViewModel{
			ID:      receipt.ID,
			Message: fmt.Sprintf("Anonymous message sent successfully to channel %s.", channelName),
		})
		return
	}
	writeJSON(w, http.StatusOK, postReceiptViewModel{
		ID:      receipt.ID,
		Sender:  receipt.Sender.Username(),
		Message: fmt.Sprintf("Message sent successfully to channel %s.", channelName),
	})
}
