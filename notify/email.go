package notify

import (
	"fmt"
	"io"

	"github.com/jordan-wright/email"
)

// EmailHandler renders a notification as a plain-text mail and writes it
// to the sink.
type EmailHandler struct {
	from string
	out  io.Writer
}

func NewEmailHandler(props map[string]string, out io.Writer) Handler {
	from := props["from"]
	if from == "" {
		from = "noreply@example.com"
	}
	return &EmailHandler{from: from, out: out}
}

func (h *EmailHandler) Send(msg Message) error {
	e := email.NewEmail()
	e.From = h.from
	e.To = []string{msg.Recipient}
	e.Subject = msg.Title
	e.Text = []byte(msg.Content)
	_, err := fmt.Fprintf(h.out, "To: %s\nSubject: %s\n%s\n", e.To[0], e.Subject, e.Text)
	return err
}
