package notify

import (
	"fmt"
	"io"
)

// SMSHandler writes a notification formatted as a text message.
type SMSHandler struct {
	senderID string
	out      io.Writer
}

func NewSMSHandler(props map[string]string, out io.Writer) Handler {
	return &SMSHandler{senderID: props["sender_id"], out: out}
}

func (h *SMSHandler) Send(msg Message) error {
	addr := "SMS to " + msg.Recipient
	if h.senderID != "" {
		addr += " from " + h.senderID
	}
	_, err := fmt.Fprintf(h.out, "%s\n%s\n%s\n", addr, msg.Title, msg.Content)
	return err
}
