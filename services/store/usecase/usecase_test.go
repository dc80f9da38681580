package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Nugamoto/bestbuy2.0/services/store/entity"
	"github.com/Nugamoto/bestbuy2.0/services/store/usecase"
)

type storeTestSuite struct {
	suite.Suite
}

func TestStore(t *testing.T) {
	suite.Run(t, new(storeTestSuite))
}

func (s *storeTestSuite) product(name string, price float64, quantity int) *entity.Product {
	p, err := entity.NewProduct(name, price, quantity)
	s.Require().NoError(err)

	return p
}

func (s *storeTestSuite) store(products ...*entity.Product) *usecase.Store {
	st, err := usecase.New(products...)
	s.Require().NoError(err)

	return st
}

func (s *storeTestSuite) TestNewRejectsNilProduct() {
	_, err := usecase.New(s.product("A", 10, 1), nil)
	s.Require().ErrorIs(err, usecase.ErrNilProduct)
}

func (s *storeTestSuite) TestOrderSuccess() {
	p := s.product("Pixel", 10, 5)
	st := s.store(p)

	total, err := st.Order([]entity.OrderLine{{Product: p, Quantity: 3}})
	s.Require().NoError(err)
	s.Require().Equal(30.0, total)
	s.Require().Equal(2, p.Quantity())
}

func (s *storeTestSuite) TestOrderAppliesPromotions() {
	macbook := s.product("MacBook", 10, 10)
	earbuds := s.product("Earbuds", 10, 10)

	secondHalf, err := entity.NewSecondItemHalfPrice("second half")
	s.Require().NoError(err)
	macbook.SetPromotion(secondHalf)

	thirdFree, err := entity.NewBuyTwoGetOneFree("third free")
	s.Require().NoError(err)
	earbuds.SetPromotion(thirdFree)

	st := s.store(macbook, earbuds)

	total, err := st.Order([]entity.OrderLine{
		{Product: macbook, Quantity: 2}, // 15
		{Product: earbuds, Quantity: 3}, // 20
	})
	s.Require().NoError(err)
	s.Require().Equal(35.0, total)
	s.Require().Equal(8, macbook.Quantity())
	s.Require().Equal(7, earbuds.Quantity())
}

func (s *storeTestSuite) TestOrderIsAllOrNothing() {
	a := s.product("A", 10, 2)
	b := s.product("B", 20, 0) // sold out, inactive
	st := s.store(a, b)

	_, err := st.Order([]entity.OrderLine{
		{Product: a, Quantity: 1},
		{Product: b, Quantity: 1},
	})

	var vErr *entity.OrderValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Require().Equal(1, vErr.Line)
	s.Require().Equal("B", vErr.Product)
	s.Require().Equal(b.ID(), vErr.ProductID)
	s.Require().Contains(err.Error(), b.ID().String(), "message identifies the failing product")
	s.Require().ErrorIs(err, entity.ErrProductInactive)

	s.Require().Equal(2, a.Quantity(), "no partial commit")
}

func (s *storeTestSuite) TestOrderSumsDuplicateLines() {
	p := s.product("Pixel", 10, 3)
	st := s.store(p)

	_, err := st.Order([]entity.OrderLine{
		{Product: p, Quantity: 2},
		{Product: p, Quantity: 2},
	})

	var vErr *entity.OrderValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Require().Equal(1, vErr.Line)
	s.Require().ErrorIs(err, entity.ErrOutOfStock)
	s.Require().Equal(3, p.Quantity())

	total, err := st.Order([]entity.OrderLine{
		{Product: p, Quantity: 2},
		{Product: p, Quantity: 1},
	})
	s.Require().NoError(err)
	s.Require().Equal(30.0, total)
	s.Require().Equal(0, p.Quantity())
	s.Require().False(p.IsActive())
}

func (s *storeTestSuite) TestOrderRejectsForeignProduct() {
	inStore := s.product("A", 10, 5)
	foreign := s.product("Elsewhere", 10, 5)
	st := s.store(inStore)

	_, err := st.Order([]entity.OrderLine{{Product: foreign, Quantity: 1}})
	s.Require().ErrorIs(err, usecase.ErrProductNotFound)

	var vErr *entity.OrderValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Require().Equal(0, vErr.Line)
}

func (s *storeTestSuite) TestOrderRejectsNonPositiveQuantity() {
	p := s.product("A", 10, 5)
	st := s.store(p)

	_, err := st.Order([]entity.OrderLine{{Product: p, Quantity: 0}})
	s.Require().ErrorIs(err, entity.ErrInvalidQuantity)
	s.Require().Equal(5, p.Quantity())
}

func (s *storeTestSuite) TestOrderHonorsPurchaseLimit() {
	shipping, err := entity.NewLimitedProduct("Shipping", 10, 250, 1)
	s.Require().NoError(err)

	st := s.store(shipping)

	_, err = st.Order([]entity.OrderLine{{Product: shipping, Quantity: 2}})
	s.Require().ErrorIs(err, entity.ErrPurchaseLimitExceeded)
	s.Require().Equal(250, shipping.Quantity())

	total, err := st.Order([]entity.OrderLine{{Product: shipping, Quantity: 1}})
	s.Require().NoError(err)
	s.Require().Equal(10.0, total)
}

func (s *storeTestSuite) TestOrderEmptyIsFree() {
	st := s.store(s.product("A", 10, 5))

	total, err := st.Order(nil)
	s.Require().NoError(err)
	s.Require().Equal(0.0, total)
}

func (s *storeTestSuite) TestTotalQuantity() {
	soldOut := s.product("Gone", 10, 0)
	st := s.store(s.product("A", 10, 5), s.product("B", 10, 7), soldOut)

	s.Require().Equal(12, st.TotalQuantity())
}

func (s *storeTestSuite) TestActiveProducts() {
	a := s.product("A", 10, 5)
	gone := s.product("Gone", 10, 0)
	b := s.product("B", 10, 7)
	st := s.store(a, gone, b)

	first := st.ActiveProducts()
	second := st.ActiveProducts()

	s.Require().Equal([]*entity.Product{a, b}, first, "catalog order, inactive excluded")
	s.Require().Equal(first, second, "read-only queries are idempotent")
}

func (s *storeTestSuite) TestAddProduct() {
	a := s.product("A", 10, 5)
	st := s.store(a)

	b := s.product("B", 20, 3)
	s.Require().NoError(st.AddProduct(b))
	s.Require().True(st.Contains(b))
	s.Require().Equal(8, st.TotalQuantity())

	// adding a present product restocks it instead of duplicating the entry
	s.Require().NoError(st.AddProduct(a))
	s.Require().Equal(10, a.Quantity())
	s.Require().Len(st.ActiveProducts(), 2)

	s.Require().ErrorIs(st.AddProduct(nil), usecase.ErrNilProduct)
}

func (s *storeTestSuite) TestRemoveProduct() {
	a := s.product("A", 10, 5)
	b := s.product("B", 20, 3)
	st := s.store(a, b)

	s.Require().NoError(st.RemoveProduct(a))
	s.Require().False(st.Contains(a))
	s.Require().Equal([]*entity.Product{b}, st.ActiveProducts())

	err := st.RemoveProduct(a)
	s.Require().True(errors.Is(err, usecase.ErrProductNotFound))
}

func (s *storeTestSuite) TestMerge() {
	a := s.product("A", 10, 5)
	b := s.product("B", 20, 3)
	c := s.product("C", 30, 1)

	left := s.store(a, b)
	right := s.store(b, c)

	merged := left.Merge(right)

	s.Require().True(merged.Contains(a))
	s.Require().Equal(3, b.Quantity(), "shared products keep their stock")
	s.Require().True(merged.Contains(c))
	s.Require().Equal([]*entity.Product{a, b, c}, merged.ActiveProducts())

	// receiver keeps its own catalog
	s.Require().False(left.Contains(c))
}
