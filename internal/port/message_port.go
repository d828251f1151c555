package port

import "context"

// MessageChannel hands a finished order off to the outside world,
// conceptually opening a prefilled message composer. The payload is
// already percent-encoded and never empty.
type MessageChannel interface {
	Send(ctx context.Context, destination string, payload string) error
}
