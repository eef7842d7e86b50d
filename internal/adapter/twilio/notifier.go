// Package twilio delivers alert messages over SMS.
package twilio

import (
	"log/slog"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/couchcryptid/feedsnow/internal/config"
)

// messageCreator is the slice of the Twilio REST client the notifier needs;
// tests substitute a fake.
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// Notifier sends SMS alerts through the Twilio Messages API. Construction
// without credentials yields a no-op notifier.
type Notifier struct {
	from   string
	to     string
	api    messageCreator
	logger *slog.Logger
}

// NewNotifier creates a Notifier from config. Missing credentials are not an
// error; Send simply logs and returns.
func NewNotifier(cfg *config.Config, logger *slog.Logger) *Notifier {
	n := &Notifier{
		from:   cfg.TwilioFromNumber,
		to:     cfg.TwilioToNumber,
		logger: logger,
	}
	if cfg.NotifyEnabled() {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
		n.api = client.Api
	}
	return n
}

// Send delivers the message body. Delivery failures are logged and never
// propagate; the run exits successfully whether or not the SMS went out.
func (n *Notifier) Send(body string) {
	if n.api == nil {
		n.logger.Info("twilio credentials not set, skipping notification")
		return
	}

	params := &openapi.CreateMessageParams{}
	params.SetBody(body)
	params.SetFrom(n.from)
	params.SetTo(n.to)

	if _, err := n.api.CreateMessage(params); err != nil {
		n.logger.Error("failed to send twilio notification", "error", err)
		return
	}
	n.logger.Info("sms sent")
}
