package models

// MailMessage is the payload published on the mailer queue.
type MailMessage struct {
	Type    string `json:"type,omitempty"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
