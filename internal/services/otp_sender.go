package services

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// OTPMessage prefixes every verification SMS.
const OTPMessage = "Your QuickBite verification code is"

// OTPSender delivers a text message to a phone number.
type OTPSender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// TwilioSender sends SMS through the Twilio messages API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
	logger *zap.Logger
}

// NewTwilioSender returns nil when credentials are incomplete.
func NewTwilioSender(accountSID, authToken, from string, logger *zap.Logger) *TwilioSender {
	if accountSID == "" || authToken == "" || from == "" {
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSender{client: client, from: from, logger: logger}
}

func (t *TwilioSender) Send(ctx context.Context, phoneNumber, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(phoneNumber)
	params.SetBody(message)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}

	if resp.ErrorCode != nil && *resp.ErrorCode != 0 {
		msg := ""
		if resp.ErrorMessage != nil {
			msg = *resp.ErrorMessage
		}
		return fmt.Errorf("twilio error %d: %s", *resp.ErrorCode, msg)
	}

	if resp.Sid != nil {
		t.logger.Debug("otp sms sent", zap.String("sid", *resp.Sid))
	}
	return nil
}

// NoopSender drops every message. Used when SMS delivery is disabled.
type NoopSender struct{}

func (NoopSender) Send(context.Context, string, string) error { return nil }
