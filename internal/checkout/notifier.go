package checkout

import (
	"log"

	"fastshop/internal/domain"
)

// Notifier receives the confirmed-order event. The core itself sends no
// email and persists nothing.
type Notifier interface {
	OrderConfirmed(order domain.ConfirmedOrder)
}

// LogNotifier writes confirmations to the application log, standing in for a
// real notification service.
type LogNotifier struct {
	Logger *log.Logger
}

func (n *LogNotifier) OrderConfirmed(order domain.ConfirmedOrder) {
	if n.Logger == nil {
		return
	}
	n.Logger.Printf("order %s confirmed: %d line(s), total %d cents, %s shipping, %s payment",
		order.ID, len(order.Lines), order.Totals.TotalCents, order.Shipping, order.Payment)
}
