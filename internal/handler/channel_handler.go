package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"messages/internal/service"
)

type channelViewModel struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ChannelHandler struct {
	channels service.ChannelService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewChannelHandler(channels service.ChannelService, validate *validator.Validate, logger *slog.Logger) *ChannelHandler {
	return &ChannelHandler{channels, validate, logger}
}

// ListChannels handles GET /api/channels.
func (h *ChannelHandler) ListChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.channels.List()
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	views := make([]channelViewModel, 0, len(channels))
	for _, channel := range channels {
		views = append(views, channelViewModel{ID: channel.ID, Name: channel.Name})
	}
	writeJSON(w, http.StatusOK, views)
}

// GetChannel handles GET /api/channels/{id}.
func (h *ChannelHandler) GetChannel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	channel, err := h.channels.GetByID(id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, channelViewModel{ID: channel.ID, Name: channel.Name})
}

// CreateChannel handles POST /api/channels.
func (h *ChannelHandler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var payload channelBindingModel
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := checkPayload(h.validate, payload); err != nil {
		respondError(w, h.logger, err)
		return
	}

	channel, err := h.channels.Create(payload.Name)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/channels/%d", channel.ID))
	writeJSON(w, http.StatusCreated, channelViewModel{ID: channel.ID, Name: channel.Name})
}

// EditChannel handles PUT /api/channels/{id}.
func (h *ChannelHandler) EditChannel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var payload channelBindingModel
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := checkPayload(h.validate, payload); err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.channels.Edit(id, payload.Name); err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{fmt.Sprintf("Channel #%d edited successfully.", id)})
}

// DeleteChannel handles DELETE /api/channels/{id}.
func (h *ChannelHandler) DeleteChannel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.channels.Delete(id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{fmt.Sprintf("Channel #%d deleted.", id)})
}
