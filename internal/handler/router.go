package handler

import (
	"github.com/gorilla/mux"

	"messages/internal/middleware"
	"messages/internal/service"
)

// NewRouter wires the REST surface. Identity resolution runs on every
// route; whether an identity is required is decided per handler.
func NewRouter(
	channels *ChannelHandler,
	channelMessages *ChannelMessageHandler,
	userMessages *UserMessageHandler,
	auth *AuthHandler,
	authService service.AuthService,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Identity(authService))

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/channels", channels.ListChannels).Methods("GET")
	api.HandleFunc("/channels", channels.CreateChannel).Methods("POST")
	api.HandleFunc("/channels/{id:[0-9]+}", channels.GetChannel).Methods("GET")
	api.HandleFunc("/channels/{id:[0-9]+}", channels.EditChannel).Methods("PUT")
	api.HandleFunc("/channels/{id:[0-9]+}", channels.DeleteChannel).Methods("DELETE")

	api.HandleFunc("/channel-messages/{channelName}", channelMessages.GetChannelMessages).Methods("GET")
	api.HandleFunc("/channel-messages/{channelName}", channelMessages.SendChannelMessage).Methods("POST")

	api.HandleFunc("/user/personal-messages", userMessages.GetPersonalMessages).Methods("GET")
	api.HandleFunc("/user/personal-messages", userMessages.SendPersonalMessage).Methods("POST")

	api.HandleFunc("/account/register", auth.Register).Methods("POST")
	api.HandleFunc("/account/login", auth.Login).Methods("POST")
	api.HandleFunc("/account/logout", auth.Logout).Methods("POST")

	return r
}
