package notify

import (
	"fmt"
	"io"
)

// WhatsAppHandler writes a notification formatted as a WhatsApp message.
type WhatsAppHandler struct {
	out io.Writer
}

func NewWhatsAppHandler(props map[string]string, out io.Writer) Handler {
	return &WhatsAppHandler{out: out}
}

func (h *WhatsAppHandler) Send(msg Message) error {
	_, err := fmt.Fprintf(h.out, "WhatsApp message to %s\n%s\n%s\n", msg.Recipient, msg.Title, msg.Content)
	return err
}
