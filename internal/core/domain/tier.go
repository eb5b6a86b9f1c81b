package domain

// DeliveryTier is the service level a customer picks at checkout.
type DeliveryTier string

const (
	TierStandard  DeliveryTier = "standard"
	TierExpress   DeliveryTier = "express"
	TierSameDay   DeliveryTier = "same_day"
	TierScheduled DeliveryTier = "scheduled"
)

// DeliveryTiers lists every known tier in display order.
var DeliveryTiers = []DeliveryTier{TierStandard, TierExpress, TierSameDay, TierScheduled}

// Label returns the customer-facing name of the tier.
func (t DeliveryTier) Label() string {
	switch t {
	case TierStandard:
		return "Standard Delivery"
	case TierExpress:
		return "Express Delivery"
	case TierSameDay:
		return "Same-Day Delivery"
	case TierScheduled:
		return "Scheduled Delivery"
	default:
		return "Delivery"
	}
}

// Rank is the position of the tier in DeliveryTiers; unknown tiers sort last.
func (t DeliveryTier) Rank() int {
	for i, known := range DeliveryTiers {
		if known == t {
			return i
		}
	}
	return len(DeliveryTiers)
}

// Valid reports whether t is one of the known tiers.
func (t DeliveryTier) Valid() bool {
	return t.Rank() < len(DeliveryTiers)
}

// PaymentMethod is how the customer settles the order.
type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCOD          PaymentMethod = "cod"
	PaymentMobileMoney  PaymentMethod = "mobile_money"
)
