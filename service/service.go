package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/channelcast/channelcast/notify"
)

// Service exposes the notification use cases on top of a channel
// registry. Each operation shapes a message from a fixed template and
// delegates delivery to the handler resolved for the requested channel.
type Service struct {
	registry *notify.Registry
	log      zerolog.Logger
}

func New(registry *notify.Registry, log zerolog.Logger) *Service {
	return &Service{registry: registry, log: log}
}

// SendOrderConfirmation notifies recipient that their order was
// confirmed, over the given channel.
func (s *Service) SendOrderConfirmation(recipient, orderNumber, channel string) error {
	return s.dispatch(channel, notify.Message{
		Recipient: recipient,
		Title:     "Order Confirmed",
		Content:   fmt.Sprintf("Your order %s has been confirmed!", orderNumber),
	})
}

// SendShippingUpdate notifies recipient that their order shipped.
func (s *Service) SendShippingUpdate(recipient, trackingCode, channel string) error {
	return s.dispatch(channel, notify.Message{
		Recipient: recipient,
		Title:     "Order Shipped",
		Content:   fmt.Sprintf("Your order has shipped! Tracking code: %s", trackingCode),
	})
}

// SendPaymentReminder notifies recipient of a pending payment.
func (s *Service) SendPaymentReminder(recipient string, amount float64, channel string) error {
	return s.dispatch(channel, notify.Message{
		Recipient: recipient,
		Title:     "Payment Reminder",
		Content:   fmt.Sprintf("You have a pending payment of $%.2f", amount),
	})
}

func (s *Service) dispatch(channel string, msg notify.Message) error {
	id := uuid.NewString()
	handler, err := s.registry.Create(channel)
	if err != nil {
		s.log.Error().Err(err).Str("dispatch_id", id).Str("channel", channel).Msg("channel lookup failed")
		return err
	}
	if err := handler.Send(msg); err != nil {
		s.log.Error().Err(err).Str("dispatch_id", id).Str("channel", channel).Msg("send failed")
		return err
	}
	s.log.Info().
		Str("dispatch_id", id).
		Str("channel", channel).
		Str("recipient", msg.Recipient).
		Str("title", msg.Title).
		Msg("notification sent")
	return nil
}
