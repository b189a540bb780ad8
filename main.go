package main

import (
	"io"
	"os"

	"github.com/channelcast/channelcast/config"
	"github.com/channelcast/channelcast/logging"
	"github.com/channelcast/channelcast/notify"
	"github.com/channelcast/channelcast/service"
)

func setupRegistry(cfg *config.Config, out io.Writer) (*notify.Registry, error) {
	reg := notify.NewRegistry()
	for _, ch := range cfg.Channels {
		h, err := notify.NewHandler(ch.Type, ch.Properties, out)
		if err != nil {
			return nil, err
		}
		reg.Register(ch.Type, h)
	}
	return reg, nil
}

func main() {
	log := logging.New("info")
	cfg, err := config.Load("channelcast.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	log = logging.New(cfg.LogLevel)

	reg, err := setupRegistry(cfg, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build channel registry")
	}
	log.Info().Strs("channels", reg.Channels()).Msg("channel registry ready")

	svc := service.New(reg, log)
	demo := []struct {
		name string
		run  func() error
	}{
		{"order confirmation via email", func() error {
			return svc.SendOrderConfirmation("customer@example.com", "A-1043", "email")
		}},
		{"order confirmation via sms", func() error {
			return svc.SendOrderConfirmation("+15551234567", "A-1043", "sms")
		}},
		{"shipping update via push", func() error {
			return svc.SendShippingUpdate("device-token-8f41", "TRK123456789", "push")
		}},
		{"payment reminder via whatsapp", func() error {
			return svc.SendPaymentReminder("+15551234567", 150.00, "whatsapp")
		}},
		{"payment reminder via telegram", func() error {
			return svc.SendPaymentReminder("@customer", 150.00, "telegram")
		}},
	}
	for _, d := range demo {
		if err := d.run(); err != nil {
			log.Fatal().Err(err).Str("demo", d.name).Msg("dispatch failed")
		}
	}
}
