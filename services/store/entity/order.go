package entity

// OrderLine is one product/quantity request within an order. Lines refer to
// products by reference, not by name.
type OrderLine struct {
	Product  *Product
	Quantity int
}
