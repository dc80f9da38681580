package usecase

import (
	"errors"
	"fmt"
	"math"

	"github.com/Nugamoto/bestbuy2.0/services/store/entity"
)

var (
	ErrProductNotFound = errors.New("product is not available in the store")
	ErrNilProduct      = errors.New("product must not be nil")
)

// Store aggregates the product catalog and runs the checkout protocol.
// Catalog order is insertion order. A Store assumes one logical caller at a
// time; callers sharing an instance must serialize access themselves.
type Store struct {
	products []*entity.Product
}

func New(products ...*entity.Product) (*Store, error) {
	s := &Store{products: make([]*entity.Product, 0, len(products))}

	for i, p := range products {
		if p == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilProduct, i)
		}

		s.products = append(s.products, p)
	}

	return s, nil
}

// ActiveProducts returns the purchasable products in catalog order. The
// returned slice is a fresh copy on every call.
func (s *Store) ActiveProducts() []*entity.Product {
	active := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}

	return active
}

// TotalQuantity sums the stock of every product, sold-out ones contributing
// zero.
func (s *Store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}

	return total
}

func (s *Store) Contains(p *entity.Product) bool {
	for _, known := range s.products {
		if known == p {
			return true
		}
	}

	return false
}

// AddProduct appends a product to the catalog. Adding a product that is
// already present restocks the existing entry instead of duplicating it.
func (s *Store) AddProduct(p *entity.Product) error {
	if p == nil {
		return ErrNilProduct
	}

	for _, known := range s.products {
		if known == p {
			return known.SetQuantity(known.Quantity() + p.Quantity())
		}
	}

	s.products = append(s.products, p)

	return nil
}

func (s *Store) RemoveProduct(p *entity.Product) error {
	for i, known := range s.products {
		if known == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}

	return ErrProductNotFound
}

// Merge returns a new store holding the receiver's catalog followed by the
// products of other that are not already present. Both input stores keep
// their catalogs and no product stock is touched.
func (s *Store) Merge(other *Store) *Store {
	merged := &Store{products: make([]*entity.Product, len(s.products), len(s.products)+len(other.products))}
	copy(merged.products, s.products)

	for _, p := range other.products {
		if merged.Contains(p) {
			continue
		}

		merged.products = append(merged.products, p)
	}

	return merged
}

// Order runs the two-phase checkout protocol: first every line is validated
// against a consistent stock snapshot (duplicate lines for one product are
// summed, so a valid order always commits), then each line is bought in
// order and the per-line prices are accumulated.
//
// Any validation failure aborts the whole order with *entity.OrderValidationError
// and commits nothing. A commit-phase failure cannot happen under the
// single-caller model; should stock still change between the phases, the
// error is returned and lines committed before it stay committed.
func (s *Store) Order(lines []entity.OrderLine) (float64, error) {
	requested := make(map[*entity.Product]int, len(lines))

	for i, line := range lines {
		if line.Product == nil {
			return 0, &entity.OrderValidationError{Line: i, Err: ErrNilProduct}
		}

		name, id := line.Product.Name(), line.Product.ID()

		if line.Quantity < 1 {
			return 0, &entity.OrderValidationError{
				Line: i, Product: name, ProductID: id,
				Err: fmt.Errorf("%w: %d", entity.ErrInvalidQuantity, line.Quantity),
			}
		}

		if !s.Contains(line.Product) {
			return 0, &entity.OrderValidationError{Line: i, Product: name, ProductID: id, Err: ErrProductNotFound}
		}

		if !line.Product.IsActive() {
			return 0, &entity.OrderValidationError{Line: i, Product: name, ProductID: id, Err: entity.ErrProductInactive}
		}

		if max := line.Product.MaxPerOrder(); max > 0 && line.Quantity > max {
			return 0, &entity.OrderValidationError{
				Line: i, Product: name, ProductID: id,
				Err: fmt.Errorf("%w: at most %d per purchase", entity.ErrPurchaseLimitExceeded, max),
			}
		}

		requested[line.Product] += line.Quantity

		if !line.Product.Stockless() && requested[line.Product] > line.Product.Quantity() {
			return 0, &entity.OrderValidationError{
				Line: i, Product: name, ProductID: id,
				Err: fmt.Errorf("%w: %d requested in total, %d in stock",
					entity.ErrOutOfStock, requested[line.Product], line.Product.Quantity()),
			}
		}
	}

	total := 0.0

	for i, line := range lines {
		price, err := line.Product.Buy(line.Quantity)
		if err != nil {
			return 0, fmt.Errorf("order line %d (%s): %w", i, line.Product.Name(), err)
		}

		total += price
	}

	return math.Round(total*100) / 100, nil
}
