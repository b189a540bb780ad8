package notify

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Message is a single notification to deliver over one channel. It is
// built per send and carries no identity.
type Message struct {
	Recipient string
	Title     string
	Content   string
}

// Handler is the interface for all notification channels.
type Handler interface {
	Send(msg Message) error
}

// ErrUnsupportedChannel is returned when no handler exists for a channel
// identifier.
var ErrUnsupportedChannel = errors.New("notification channel not supported")

// constructors maps a channel type to its handler constructor. New
// channels are added here and nowhere else.
var constructors = map[string]func(props map[string]string, out io.Writer) Handler{
	"email":    NewEmailHandler,
	"sms":      NewSMSHandler,
	"push":     NewPushHandler,
	"whatsapp": NewWhatsAppHandler,
	"telegram": NewTelegramHandler,
}

// NewHandler creates a handler for the given channel type writing to out.
// The type is matched case-insensitively.
func NewHandler(channelType string, props map[string]string, out io.Writer) (Handler, error) {
	ctor, ok := constructors[strings.ToLower(channelType)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChannel, channelType)
	}
	return ctor(props, out), nil
}

// Registry maps channel identifiers to handlers. It is populated once at
// startup and only read afterwards; callers hold it by reference.
type Registry struct {
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register stores h under the canonical (lowercase) form of id.
// Registering an equal-fold id again replaces the earlier handler.
func (r *Registry) Register(id string, h Handler) {
	r.handlers[strings.ToLower(id)] = h
}

// Create returns the handler registered for id. Lookup is
// case-insensitive and never falls back to a default handler.
func (r *Registry) Create(id string) (Handler, error) {
	h, ok := r.handlers[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChannel, id)
	}
	return h, nil
}

// Channels returns the registered identifiers in sorted order.
func (r *Registry) Channels() []string {
	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultRegistry builds a registry with every built-in handler writing
// to out. All handlers are constructed eagerly.
func DefaultRegistry(out io.Writer) *Registry {
	r := NewRegistry()
	for id, ctor := range constructors {
		r.Register(id, ctor(nil, out))
	}
	return r
}
