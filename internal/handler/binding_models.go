package handler

// Binding models carry the validation attributes of the request
// payloads; the services re-check their own invariants regardless of
// transport.

type channelBindingModel struct {
	Name string `json:"name" validate:"required,max=100"`
}

type channelMessageBindingModel struct {
	Text string `json:"text" validate:"required"`
}

type userMessageBindingModel struct {
	Text      string `json:"text" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
}

type accountBindingModel struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=2"`
}
