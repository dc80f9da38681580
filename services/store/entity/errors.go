package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNameRequired           = errors.New("name is required")
	ErrNegativePrice          = errors.New("price must be zero or positive")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrOutOfStock             = errors.New("not enough products in stock")
	ErrProductInactive        = errors.New("product is not active")
	ErrInvalidPromotionConfig = errors.New("invalid promotion configuration")
	ErrInvalidPurchaseLimit   = errors.New("purchase limit must be positive")
	ErrPurchaseLimitExceeded  = errors.New("purchase limit exceeded")
)

// OrderValidationError reports the first order line that failed pre-commit
// validation. Nothing is committed when it is returned.
type OrderValidationError struct {
	Line      int
	Product   string
	ProductID uuid.UUID
	Err       error
}

func (e *OrderValidationError) Error() string {
	if e.Product == "" {
		return fmt.Sprintf("order line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("order line %d (%s, id %s): %v", e.Line, e.Product, e.ProductID, e.Err)
}

func (e *OrderValidationError) Unwrap() error {
	return e.Err
}
