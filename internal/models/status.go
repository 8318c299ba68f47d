package models

import "github.com/shopspring/decimal"

// Status is the stock health of a material relative to its average monthly need.
type Status string

const (
	StatusShortage Status = "shortage"
	StatusNormal   Status = "normal"
	StatusSurplus  Status = "surplus"
)

// Stock below ShortageFactor times the monthly need is a shortage,
// stock above SurplusFactor times the monthly need a surplus.
var (
	ShortageFactor = decimal.NewFromFloat(0.8)
	SurplusFactor  = decimal.NewFromFloat(1.5)
)

// ClassifyStatus maps a quantity and the average monthly need to a Status.
//
// The surplus check runs first. With a need of zero, any positive
// quantity is a surplus and a quantity of zero is normal.
func ClassifyStatus(quantity, need decimal.Decimal) Status {
	if quantity.GreaterThan(need.Mul(SurplusFactor)) {
		return StatusSurplus
	}

	if quantity.LessThan(need.Mul(ShortageFactor)) {
		return StatusShortage
	}

	return StatusNormal
}

// Critical reports if the status should raise alerts.
func (s Status) Critical() bool {
	return s == StatusShortage || s == StatusSurplus
}

// Status returns the current stock status. It is never stored.
func (m Material) Status() Status {
	return ClassifyStatus(m.CurrentQuantity, m.AverageMonthlyNeed)
}
