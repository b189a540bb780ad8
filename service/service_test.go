package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channelcast/channelcast/notify"
)

func newTestService(out *bytes.Buffer) *Service {
	return New(notify.DefaultRegistry(out), zerolog.Nop())
}

func outputLines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestSendOrderConfirmationViaEmail(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService(&out)

	require.NoError(t, svc.SendOrderConfirmation("a@b.com", "12345", "email"))

	lines := outputLines(&out)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "a@b.com")
	assert.Equal(t, "Subject: Order Confirmed", lines[1])
	assert.Contains(t, lines[2], "12345")
}

func TestSendShippingUpdateViaPush(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService(&out)

	require.NoError(t, svc.SendShippingUpdate("device-1", "TRK123456789", "push"))

	lines := outputLines(&out)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "device-1")
	assert.Equal(t, "Order Shipped", lines[1])
	assert.Contains(t, lines[2], "TRK123456789")
}

func TestSendPaymentReminderViaWhatsApp(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService(&out)

	require.NoError(t, svc.SendPaymentReminder("+15551234567", 150.00, "whatsapp"))

	lines := outputLines(&out)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "+15551234567")
	assert.Equal(t, "Payment Reminder", lines[1])
	assert.Contains(t, lines[2], "150.00")
}

func TestUnsupportedChannelPropagates(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService(&out)

	err := svc.SendOrderConfirmation("a@b.com", "12345", "Pager")
	require.Error(t, err)
	assert.ErrorIs(t, err, notify.ErrUnsupportedChannel)
	assert.Contains(t, err.Error(), "Pager")
	assert.Empty(t, out.String())
}

func TestSamePayloadOverTwoChannels(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService(&out)

	require.NoError(t, svc.SendOrderConfirmation("a@b.com", "12345", "email"))
	require.NoError(t, svc.SendOrderConfirmation("a@b.com", "12345", "SMS"))

	lines := outputLines(&out)
	require.Len(t, lines, 6)
	// first block is the mail, second the text message, each complete
	assert.Equal(t, "Subject: Order Confirmed", lines[1])
	assert.Contains(t, lines[2], "12345")
	assert.Equal(t, "SMS to a@b.com", lines[3])
	assert.Equal(t, "Order Confirmed", lines[4])
	assert.Contains(t, lines[5], "12345")
}
