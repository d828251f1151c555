package checkout

import (
	"context"
	"fmt"

	"github.com/CriisxD/rockerpizzaweb/internal/port"
)

// DefaultDestination is the store's WhatsApp number.
const DefaultDestination = "56989705094"

// Opener opens a composer URL in whatever counts as a browser for the
// host. Injected so tests can capture the link instead of navigating.
type Opener func(ctx context.Context, link string) error

type whatsApp struct {
	open Opener
}

func NewWhatsApp(open Opener) (port.MessageChannel, error) {
	if open == nil {
		return nil, fmt.Errorf("opener is nil")
	}

	return &whatsApp{open: open}, nil
}

func (w *whatsApp) Send(ctx context.Context, destination string, payload string) error {
	if destination == "" {
		return fmt.Errorf("destination is empty")
	}

	if payload == "" {
		return fmt.Errorf("payload is empty")
	}

	link := fmt.Sprintf("https://wa.me/%s?text=%s", destination, payload)

	if err := w.open(ctx, link); err != nil {
		return fmt.Errorf("open: %w", err)
	}

	return nil
}
