// Package pricing is the single source of truth for order money math and
// delivery-time estimates. Everything here is pure: the same functions back
// the cart preview endpoint and the server-side figures persisted on orders.
package pricing

import "github.com/guniorg/mannabean-delivery-v3/internal/domain"

// TaxRate is applied to subtotal plus delivery fee, expressed in percent.
const TaxRate = 8

// OtherLocationFee is the flat surcharge for deliveries outside the known
// apartment complexes, in VND.
const OtherLocationFee = 30000

type Line struct {
	Price    int
	Quantity int
}

type Totals struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"deliveryFee"`
	Tax         int `json:"tax"`
	Total       int `json:"total"`
}

func Subtotal(lines []Line) int {
	total := 0
	for _, line := range lines {
		total += line.Price * line.Quantity
	}
	return total
}

// DeliveryFee is zero for table orders and for the complexes the restaurant
// serves for free. Unknown locations fall open to zero rather than guessing
// a surcharge.
func DeliveryFee(orderType domain.OrderType, location domain.DeliveryLocation) int {
	if orderType != domain.OrderTypeDelivery {
		return 0
	}
	switch location {
	case domain.LocationKalidas, domain.LocationKyeongnamA, domain.LocationKyeongnamB:
		return 0
	case domain.LocationOther:
		return OtherLocationFee
	default:
		return 0
	}
}

// Tax rounds half-up to the nearest currency unit. Integer math keeps the
// result identical on every caller.
func Tax(base int) int {
	return (base*TaxRate + 50) / 100
}

func ComputeTotals(lines []Line, orderType domain.OrderType, location domain.DeliveryLocation) Totals {
	subtotal := Subtotal(lines)
	fee := DeliveryFee(orderType, location)
	tax := Tax(subtotal + fee)
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}
}

// EstimatedMinutes is fixed at order creation and never recomputed.
func EstimatedMinutes(orderType domain.OrderType, location domain.DeliveryLocation) int {
	if orderType != domain.OrderTypeDelivery {
		return 15
	}
	switch location {
	case domain.LocationKalidas:
		return 25
	case domain.LocationKyeongnamA:
		return 30
	case domain.LocationKyeongnamB:
		return 35
	case domain.LocationOther:
		return 45
	default:
		return 30
	}
}
