package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Product is a single catalog line item: a unit price, the units in stock
// and at most one attached promotion. Stock never goes negative. A stocked
// product deactivates itself when it sells out and reactivates when it is
// restocked.
type Product struct {
	id        uuid.UUID
	name      string
	price     float64
	quantity  int
	active    bool
	promotion Promotion

	// stockless products (licenses etc.) have no physical stock and are
	// always purchasable; maxPerOrder caps a single purchase, 0 means no cap.
	stockless   bool
	maxPerOrder int
}

func NewProduct(name string, price float64, quantity int) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	if price < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativePrice, price)
	}

	if quantity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	return &Product{
		id:       uuid.New(),
		name:     name,
		price:    price,
		quantity: quantity,
		active:   quantity > 0,
	}, nil
}

// NewNonStockedProduct creates a product without physical stock, such as a
// software license. Its quantity is pinned to zero and it is always active.
func NewNonStockedProduct(name string, price float64) (*Product, error) {
	p, err := NewProduct(name, price, 0)
	if err != nil {
		return nil, err
	}

	p.stockless = true
	p.active = true

	return p, nil
}

// NewLimitedProduct creates a stocked product that can be bought at most
// maximum units at a time.
func NewLimitedProduct(name string, price float64, quantity, maximum int) (*Product, error) {
	if maximum < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPurchaseLimit, maximum)
	}

	p, err := NewProduct(name, price, quantity)
	if err != nil {
		return nil, err
	}

	p.maxPerOrder = maximum

	return p, nil
}

func (p *Product) ID() uuid.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() float64 {
	return p.price
}

func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) Promotion() Promotion {
	return p.promotion
}

func (p *Product) Stockless() bool {
	return p.stockless
}

func (p *Product) MaxPerOrder() int {
	return p.maxPerOrder
}

func (p *Product) IsActive() bool {
	return p.active
}

func (p *Product) Activate() {
	p.active = true
}

func (p *Product) Deactivate() {
	p.active = false
}

// SetQuantity sets the absolute stock level. Dropping to zero deactivates
// the product, restocking above zero reactivates it. Stockless products
// ignore stock updates.
func (p *Product) SetQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	if p.stockless {
		return nil
	}

	p.quantity = quantity
	p.active = quantity > 0

	return nil
}

// PriceFor computes the price of quantity units without touching stock.
// The promotion, when attached, prices the whole batch.
func (p *Product) PriceFor(quantity int) (float64, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	if !p.stockless && quantity > p.quantity {
		return 0, fmt.Errorf("%w: requested %d with %d in stock", ErrInvalidQuantity, quantity, p.quantity)
	}

	return p.cost(quantity), nil
}

// Buy charges for quantity units and removes them from stock. Stock stays
// untouched on any failure.
func (p *Product) Buy(quantity int) (float64, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	if p.maxPerOrder > 0 && quantity > p.maxPerOrder {
		return 0, fmt.Errorf("%w: at most %d of %q per purchase", ErrPurchaseLimitExceeded, p.maxPerOrder, p.name)
	}

	if p.stockless {
		return p.cost(quantity), nil
	}

	if quantity > p.quantity {
		return 0, fmt.Errorf("%w: requested %d, have %d", ErrOutOfStock, quantity, p.quantity)
	}

	total := p.cost(quantity)
	if err := p.SetQuantity(p.quantity - quantity); err != nil {
		return 0, err
	}

	return total, nil
}

// SetPromotion attaches a promotion, replacing any previous one. Passing nil
// clears it. Promotions never stack.
func (p *Product) SetPromotion(promo Promotion) {
	p.promotion = promo
}

func (p *Product) cost(quantity int) float64 {
	total := p.price * float64(quantity)
	if p.promotion != nil {
		total = p.promotion.Apply(p.price, quantity)
	}

	return math.Round(total*100) / 100
}
