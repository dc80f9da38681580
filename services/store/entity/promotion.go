package entity

import (
	"fmt"
	"strings"
)

// Promotion prices a purchased batch of a single product. Implementations
// are immutable and pure: the result depends only on the unit price and the
// quantity, is never negative and never decreases when quantity grows.
//
// The set of implementations is closed: PercentOff, SecondItemHalfPrice and
// BuyTwoGetOneFree. Callers guarantee quantity >= 1.
type Promotion interface {
	Name() string
	Apply(unitPrice float64, quantity int) float64
}

// PercentOff reduces the whole batch price by a fixed percentage.
type PercentOff struct {
	name    string
	percent float64
}

func NewPercentOff(name string, percent float64) (*PercentOff, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("%w: percent %v is outside [0, 100]", ErrInvalidPromotionConfig, percent)
	}

	return &PercentOff{name: name, percent: percent}, nil
}

func (p *PercentOff) Name() string {
	return p.name
}

func (p *PercentOff) Apply(unitPrice float64, quantity int) float64 {
	total := unitPrice * float64(quantity)
	return total - total*(p.percent/100)
}

// SecondItemHalfPrice charges every second unit in the batch at half price.
type SecondItemHalfPrice struct {
	name string
}

func NewSecondItemHalfPrice(name string) (*SecondItemHalfPrice, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	return &SecondItemHalfPrice{name: name}, nil
}

func (p *SecondItemHalfPrice) Name() string {
	return p.name
}

func (p *SecondItemHalfPrice) Apply(unitPrice float64, quantity int) float64 {
	fullPriceUnits := quantity/2 + quantity%2
	halfPriceUnits := quantity / 2

	return float64(fullPriceUnits)*unitPrice + float64(halfPriceUnits)*unitPrice*0.5
}

// BuyTwoGetOneFree makes every third unit in the batch free.
type BuyTwoGetOneFree struct {
	name string
}

func NewBuyTwoGetOneFree(name string) (*BuyTwoGetOneFree, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	return &BuyTwoGetOneFree{name: name}, nil
}

func (p *BuyTwoGetOneFree) Name() string {
	return p.name
}

func (p *BuyTwoGetOneFree) Apply(unitPrice float64, quantity int) float64 {
	payableUnits := quantity - quantity/3
	return float64(payableUnits) * unitPrice
}
