// Package fees owns the platform's cut on every escrow release. The
// rate lives in one place so a rate change cannot leave the milestone
// and full-release paths disagreeing.
package fees

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultRate is the platform cut applied when no rate is configured.
var DefaultRate = decimal.NewFromFloat(0.30)

type Policy struct {
	rate decimal.Decimal
}

func NewPolicy(rate decimal.Decimal) (*Policy, error) {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("platform fee rate must be in [0, 1): %s", rate)
	}
	return &Policy{rate: rate}, nil
}

// NewPolicyFromConfig parses the configured rate, falling back to
// DefaultRate when the value is unset.
func NewPolicyFromConfig(configured string) (*Policy, error) {
	if configured == "" {
		return NewPolicy(DefaultRate)
	}
	rate, err := decimal.NewFromString(configured)
	if err != nil {
		return nil, fmt.Errorf("invalid platform fee rate %q: %w", configured, err)
	}
	return NewPolicy(rate)
}

func (p *Policy) Rate() decimal.Decimal {
	return p.rate
}

// RatePercent is the rate as a percentage, for invoices.
func (p *Policy) RatePercent() decimal.Decimal {
	return p.rate.Mul(decimal.NewFromInt(100))
}

// Split divides a gross release amount into the platform fee and the
// freelancer's net. The fee is rounded to cents; net = gross - fee, so
// the two always add back up to the gross exactly.
func (p *Policy) Split(gross decimal.Decimal) (fee decimal.Decimal, net decimal.Decimal) {
	fee = gross.Mul(p.rate).Round(2)
	net = gross.Sub(fee)
	return fee, net
}
