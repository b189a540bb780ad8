package notify

import (
	"fmt"
	"io"
)

// PushHandler writes a notification formatted as a mobile push payload.
type PushHandler struct {
	app string
	out io.Writer
}

func NewPushHandler(props map[string]string, out io.Writer) Handler {
	app := props["app"]
	if app == "" {
		app = "app"
	}
	return &PushHandler{app: app, out: out}
}

func (h *PushHandler) Send(msg Message) error {
	_, err := fmt.Fprintf(h.out, "Push [%s] for device %s\n%s\n%s\n", h.app, msg.Recipient, msg.Title, msg.Content)
	return err
}
