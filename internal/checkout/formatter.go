// Package checkout turns the cart into the WhatsApp order message.
package checkout

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/CriisxD/rockerpizzaweb/internal/domain"
	"github.com/CriisxD/rockerpizzaweb/internal/port"
)

// Cart is the read side the formatter needs from the cart engine.
type Cart interface {
	Lines() []domain.CartLine
	Total() domain.Money
}

const (
	greeting        = "*Hola! Quiero realizar un pedido en Rocker Pizza*"
	fallbackName    = "Sin nombre"
	fallbackAddress = "Retiro en local"
)

type Formatter struct{}

// Transcript renders the order as the customer-facing text: delivery
// details first (notes only when present), then one bullet per cart line
// in insertion order with its ingredient breakdown, then the total.
func (f Formatter) Transcript(cart Cart, details domain.DeliveryDetails) (string, error) {
	lines := cart.Lines()
	if len(lines) == 0 {
		return "", domain.ErrEmptyCart
	}

	name := details.Name
	if strings.TrimSpace(name) == "" {
		name = fallbackName
	}

	address := details.Address
	if strings.TrimSpace(address) == "" {
		address = fallbackAddress
	}

	payment := details.PaymentMethod
	if payment == "" {
		payment = domain.PaymentCash
	}

	var b strings.Builder

	b.WriteString(greeting + "\n\n")
	fmt.Fprintf(&b, "*Cliente:* %s\n", name)
	fmt.Fprintf(&b, "*Dirección:* %s\n", address)
	fmt.Fprintf(&b, "*Pago:* %s\n", payment)

	if strings.TrimSpace(details.Notes) != "" {
		fmt.Fprintf(&b, "*Notas:* %s\n", details.Notes)
	}

	b.WriteString("\n*DETALLE DEL PEDIDO:*\n")

	for _, line := range lines {
		fmt.Fprintf(&b, "• %dx %s (%s)\n", line.Quantity, line.Name, line.Subtotal().Display())

		switch {
		case line.Config.IsBundle():
			for i, slot := range line.Config.Slots {
				fmt.Fprintf(&b, "  🍕 Pizza %d: %s\n", i+1, strings.Join(slot, ", "))
			}
		case len(line.Config.Ingredients) > 0:
			fmt.Fprintf(&b, "  _Ingredientes: %s_\n", strings.Join(line.Config.Ingredients, ", "))
		}
	}

	fmt.Fprintf(&b, "\n*TOTAL: %s*", cart.Total().Display())

	return b.String(), nil
}

// Payload is the percent-encoded transcript, ready to become the text
// parameter of the outbound message link. It is returned, never sent;
// callers decide whether a channel gets opened. Spaces become %20, not
// the form-encoding +, so the payload decodes the same everywhere.
func (f Formatter) Payload(cart Cart, details domain.DeliveryDetails) (string, error) {
	transcript, err := f.Transcript(cart, details)
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(url.QueryEscape(transcript), "+", "%20"), nil
}

// Checkout formats the order and hands it to the channel.
func (f Formatter) Checkout(ctx context.Context, cart Cart, details domain.DeliveryDetails, channel port.MessageChannel, destination string) error {
	payload, err := f.Payload(cart, details)
	if err != nil {
		return fmt.Errorf("f.Payload: %w", err)
	}

	if err := channel.Send(ctx, destination, payload); err != nil {
		return fmt.Errorf("channel.Send: %w", err)
	}

	return nil
}
