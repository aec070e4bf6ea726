package chillies

// Fixed business constants, in rupees. Not configurable.
const (
	bagBonus       = 45.0 // flat earning bonus per bag
	commissionRate = 0.02 // 2% of gross earnings
	serviceCharge  = 29.0 // flat charge per bag
)

// Settlement is the monetary breakdown of one transaction.
type Settlement struct {
	TotalEarnings float64
	Commission    float64
	ServiceCharge float64
	TotalCharges  float64
	NetAmount     float64
}

// Settle computes the settlement for a sale of bags weighing weightKg in
// total at marketRate per kg. Pure arithmetic: callers must have validated
// that all three inputs are strictly positive.
func Settle(bags int, weightKg, marketRate float64) Settlement {
	earnings := weightKg*marketRate + float64(bags)*bagBonus
	commission := earnings * commissionRate
	charge := float64(bags) * serviceCharge
	charges := commission + charge
	return Settlement{
		TotalEarnings: earnings,
		Commission:    commission,
		ServiceCharge: charge,
		TotalCharges:  charges,
		NetAmount:     earnings - charges,
	}
}
