package notify

import (
	"fmt"
	"io"
)

// TelegramHandler writes a notification formatted as a Telegram chat
// message.
type TelegramHandler struct {
	out io.Writer
}

func NewTelegramHandler(props map[string]string, out io.Writer) Handler {
	return &TelegramHandler{out: out}
}

func (h *TelegramHandler) Send(msg Message) error {
	_, err := fmt.Fprintf(h.out, "Telegram chat %s\n%s\n%s\n", msg.Recipient, msg.Title, msg.Content)
	return err
}
