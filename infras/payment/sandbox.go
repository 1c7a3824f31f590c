package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Sandbox approves every authorization and fabricates transaction
// references. Results are replayed by idempotency key, mirroring how a real
// provider deduplicates retried authorizations.
type Sandbox struct {
	mu         sync.Mutex
	authorized map[string]AuthorizeResult

	// DeclineFunc lets tests force declines for specific inputs.
	DeclineFunc func(input AuthorizeInput) (message string, declined bool)
}

func NewSandbox() *Sandbox {
	return &Sandbox{
		authorized: make(map[string]AuthorizeResult),
	}
}

func (s *Sandbox) Authorize(ctx context.Context, input AuthorizeInput) (AuthorizeResult, error) {
	if err := ctx.Err(); err != nil {
		return AuthorizeResult{}, fmt.Errorf("authorization aborted: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.authorized[input.IdempotencyKey]; ok {
		log.Info().Str("idempotencyKey", input.IdempotencyKey).Msg("Replaying previous sandbox authorization")

		return prev, nil
	}

	if s.DeclineFunc != nil {
		if message, declined := s.DeclineFunc(input); declined {
			return AuthorizeResult{Approved: false, Message: message}, nil
		}
	}

	result := AuthorizeResult{
		Approved:       true,
		TransactionRef: "sbx-" + uuid.NewString(),
		Message:        "approved",
	}

	s.authorized[input.IdempotencyKey] = result

	return result, nil
}
