package model

// EmailLetter is the payload posted to the mail gateway.
type EmailLetter struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
