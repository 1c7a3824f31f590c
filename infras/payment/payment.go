package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"lodge/config"
	"lodge/shared/constant"
	"lodge/shared/money"

	"github.com/rs/zerolog/log"
)

// AuthorizeInput carries one payment authorization attempt. Amount is in
// minor units. IdempotencyKey must be stable across retries of the same
// attempt so the provider can deduplicate instead of double-charging.
type AuthorizeInput struct {
	Amount         money.Cents
	Currency       string
	Method         string
	Details        map[string]string
	IdempotencyKey string
}

// AuthorizeResult reports the provider outcome. Approved=false with a nil
// error is a decline, not an infrastructure failure.
type AuthorizeResult struct {
	Approved       bool
	TransactionRef string
	Message        string
}

// Gateway is the payment capability consumed by checkout. Implementations
// must honor ctx cancellation; a timed-out call is treated as declined by
// the caller and must never be assumed to have succeeded.
type Gateway interface {
	Authorize(ctx context.Context, input AuthorizeInput) (AuthorizeResult, error)
}

func New(cfg *config.Config) Gateway {
	switch cfg.Payment.Mode {
	case constant.PaymentModeSandbox:
		log.Info().Msg("Payment gateway running in sandbox mode")

		return NewSandbox()
	case constant.PaymentModeProduction:
		// Refuse to boot rather than silently approve charges with no
		// provider behind them.
		log.Fatal().Msg("No production payment provider is configured")

		return nil
	default:
		log.Fatal().Str("mode", cfg.Payment.Mode).Msg("Unknown payment mode")

		return nil
	}
}
