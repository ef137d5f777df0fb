package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// PaymentIntentProvider creates a payment intent and returns its client secret.
type PaymentIntentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// StripeProvider creates intents through the Stripe API.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider returns nil when no secret key is configured.
func NewStripeProvider(secretKey string) *StripeProvider {
	if secretKey == "" {
		return nil
	}
	return &StripeProvider{api: client.New(secretKey, nil)}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// PaymentIntent is what the client needs to confirm a payment.
type PaymentIntent struct {
	PublishableKey string `json:"publishableKey"`
	ClientSecret   string `json:"clientSecret"`
}

// PaymentService issues payment intents for checkout.
type PaymentService struct {
	provider       PaymentIntentProvider
	publishableKey string
	currency       string
	logger         *zap.Logger
}

// NewPaymentService constructs PaymentService. provider may be nil, in which
// case every request fails as a server error.
func NewPaymentService(provider PaymentIntentProvider, publishableKey, currency string, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		provider:       provider,
		publishableKey: publishableKey,
		currency:       currency,
		logger:         logger,
	}
}

var errNoPaymentProvider = errors.New("payment provider not configured")

// CreatePaymentIntent starts a payment of amount minor currency units.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, amount int64) (*PaymentIntent, error) {
	if amount < 1 {
		return nil, newError(KindValidation, "amount must be greater than or equal to 1")
	}
	if s.provider == nil {
		return nil, &Error{Kind: KindInternal, Message: MsgPaymentFailed, Err: errNoPaymentProvider}
	}

	secret, err := s.provider.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		s.logger.Error("payment intent failed", zap.Int64("amount", amount), zap.Error(err))
		return nil, &Error{Kind: KindInternal, Message: MsgPaymentFailed, Err: fmt.Errorf("create intent: %w", err)}
	}

	return &PaymentIntent{PublishableKey: s.publishableKey, ClientSecret: secret}, nil
}
