package mailer

import "context"

// Attachment is a named binary part attached to an outbound message.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is an outbound templated email. Built once, sent exactly once.
type Message struct {
	To           string
	Subject      string
	TemplateName string
	Context      map[string]string
	Attachments  []Attachment
}

// Mailer delivers messages through the configured email provider.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
