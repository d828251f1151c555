package domain

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentTransfer PaymentMethod = "Transferencia"
	PaymentCard     PaymentMethod = "Tarjeta"
)

// DeliveryDetails is what the customer types into the checkout form.
// Every field may be blank; the formatter substitutes fallbacks.
type DeliveryDetails struct {
	Name          string
	Address       string
	PaymentMethod PaymentMethod
	Notes         string
}
