package notify

import (
	"context"

	"go.uber.org/multierr"
)

// Messenger posts one message to a chat channel using a per-call
// credential. Credentials are fetched fresh each invocation, so they are
// arguments rather than construction state.
type Messenger interface {
	Post(ctx context.Context, token, channel, text string) error
}

// Multi fans a message out to several messengers and combines errors.
type Multi []Messenger

func (m Multi) Post(ctx context.Context, token, channel, text string) error {
	var errs error
	for _, n := range m {
		if n == nil {
			continue
		}
		errs = multierr.Append(errs, n.Post(ctx, token, channel, text))
	}
	return errs
}
