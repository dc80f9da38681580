// Package console is the interactive text controller over the store
// usecase. It owns all terminal I/O and formatting; every error from the
// core is printed and the loop continues.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Nugamoto/bestbuy2.0/services/store/entity"
)

const currency = "€"

// Quantity prompts for stockless products need an upper bound even though
// the product has none.
const stocklessOrderCap = 10000

const (
	menuListProducts = iota + 1
	menuTotalQuantity
	menuMakeOrder
	menuQuit
)

// Store is the slice of the store usecase the shell drives.
type Store interface {
	ActiveProducts() []*entity.Product
	TotalQuantity() int
	Order(lines []entity.OrderLine) (float64, error)
}

type Shell struct {
	store Store
	in    *bufio.Scanner
	out   io.Writer
	log   *zap.Logger
}

func New(store Store, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	return &Shell{store: store, in: bufio.NewScanner(in), out: out, log: log}
}

// Run drives the menu loop until the user quits, input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.printMenu()

		choice, ok := s.readNumber(1, menuQuit)
		if !ok {
			// EOF behaves like quit
			return nil
		}

		switch choice {
		case menuListProducts:
			s.printProducts()
		case menuTotalQuantity:
			s.printTotalQuantity()
		case menuMakeOrder:
			s.orderProcess()
		case menuQuit:
			return nil
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprint(s.out, "\n\n\t--- Store Menu ---\n"+
		"\t------------------\n"+
		"1. List all products in store\n"+
		"2. Show total amount in store\n"+
		"3. Make an order\n"+
		"4. Quit\n")
}

// readNumber prompts until the user enters a number within [from, to].
// It returns (0, true) on an empty line and ok=false when input ends.
func (s *Shell) readNumber(from, to int) (int, bool) {
	for {
		fmt.Fprintf(s.out, "Please choose a number(%d-%d): ", from, to)

		if !s.in.Scan() {
			return 0, false
		}

		input := strings.TrimSpace(s.in.Text())
		if input == "" {
			return 0, true
		}

		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(s.out, "You haven't entered a number!")
			continue
		}

		if n < from || n > to {
			fmt.Fprintf(s.out, "Number must be between '%d' and '%d'!\n", from, to)
			continue
		}

		return n, true
	}
}

func (s *Shell) printProducts() {
	products := s.store.ActiveProducts()
	if len(products) == 0 {
		fmt.Fprintln(s.out, "\nStore is sold out.")
		return
	}

	fmt.Fprint(s.out, "\nAll Products:\n------------\n")

	for i, p := range products {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, describe(p))
	}

	fmt.Fprintln(s.out, "------------")
}

func (s *Shell) printTotalQuantity() {
	fmt.Fprintf(s.out, "\nTotal of '%d' items in store.\n", s.store.TotalQuantity())
}

func (s *Shell) orderProcess() {
	products := s.store.ActiveProducts()

	s.printProducts()

	if len(products) == 0 {
		return
	}

	cart := s.collectCart(products)
	if len(cart) == 0 {
		fmt.Fprintln(s.out, "\nOrder was empty.")
		return
	}

	productIDs := make([]string, 0, len(cart))
	for _, line := range cart {
		productIDs = append(productIDs, line.Product.ID().String())
	}

	total, err := s.store.Order(cart)
	if err != nil {
		s.log.Warn("order rejected",
			zap.Int("lines", len(cart)),
			zap.Strings("product_ids", productIDs),
			zap.Error(err))
		fmt.Fprintf(s.out, "\nOrder failed: %v\n", err)

		return
	}

	s.log.Info("order completed",
		zap.Int("lines", len(cart)),
		zap.Strings("product_ids", productIDs),
		zap.Float64("total", total))
	fmt.Fprintf(s.out, "\n*** Order made. Total payment: %.2f%s ***\n", total, currency)
}

// collectCart builds the order lines interactively. Remaining stock is
// tracked per product so the user cannot put more in the cart than the
// store can fulfill. An empty product choice (or EOF) finishes the cart.
func (s *Shell) collectCart(products []*entity.Product) []entity.OrderLine {
	remaining := make([]int, len(products))
	for i, p := range products {
		remaining[i] = p.Quantity()
	}

	var cart []entity.OrderLine

	for {
		fmt.Fprint(s.out, "When you want to finish order, enter empty text.\nWhich product do you want?\n")

		choice, ok := s.readNumber(1, len(products))
		if !ok || choice == 0 {
			return cart
		}

		idx := choice - 1
		product := products[idx]

		if !product.Stockless() && remaining[idx] < 1 {
			fmt.Fprint(s.out, "\nYou have all items in your cart.\nCheckout or add another product.\n")
			continue
		}

		limit := remaining[idx]
		if product.Stockless() {
			limit = stocklessOrderCap
		}

		if max := product.MaxPerOrder(); max > 0 && max < limit {
			limit = max
		}

		fmt.Fprintln(s.out, "What amount do you want?")

		quantity, ok := s.readNumber(1, limit)
		if !ok {
			return cart
		}

		if quantity == 0 {
			continue
		}

		cart = append(cart, entity.OrderLine{Product: product, Quantity: quantity})

		if !product.Stockless() {
			remaining[idx] -= quantity
		}

		fmt.Fprintf(s.out, "\n'%s' successfully added to cart. (%d pcs)\n", product.Name(), quantity)
	}
}

func describe(p *entity.Product) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s | Price: %.2f%s | ", p.Name(), p.Price(), currency)

	if p.Stockless() {
		b.WriteString("Quantity: Unlimited")
	} else {
		fmt.Fprintf(&b, "Quantity: %d", p.Quantity())
	}

	if max := p.MaxPerOrder(); max > 0 {
		fmt.Fprintf(&b, " | Maximum: %d", max)
	}

	if promo := p.Promotion(); promo != nil {
		fmt.Fprintf(&b, " | Promotion: %s", promo.Name())
	}

	return b.String()
}
