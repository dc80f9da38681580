// Package catalog seeds the store from a YAML catalog file. The core never
// reads configuration itself; this adapter builds the initial products and
// hands them to the usecase.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Nugamoto/bestbuy2.0/pkg/log"
	"github.com/Nugamoto/bestbuy2.0/services/store/entity"
)

const (
	kindStocked    = ""
	kindNonStocked = "non_stocked"
	kindLimited    = "limited"

	promoPercent         = "percent"
	promoSecondHalfPrice = "second_half_price"
	promoThirdOneFree    = "third_one_free"
)

var errEmptyCatalog = errors.New("catalog has no products")

type catalogFile struct {
	Products []productSpec `yaml:"products"`
}

type productSpec struct {
	Name      string         `yaml:"name"`
	Price     float64        `yaml:"price"`
	Quantity  int            `yaml:"quantity"`
	Type      string         `yaml:"type"`
	Maximum   int            `yaml:"maximum"`
	Promotion *promotionSpec `yaml:"promotion"`
}

type promotionSpec struct {
	Type    string  `yaml:"type"`
	Name    string  `yaml:"name"`
	Percent float64 `yaml:"percent"`
}

// Load reads the catalog file at path and builds the seed products.
func Load(path string) ([]*entity.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	products, err := Parse(f)
	if err != nil {
		return nil, err
	}

	log.L().Info("catalog loaded",
		zap.String("path", path),
		zap.Int("products", len(products)))

	return products, nil
}

// Parse decodes a YAML catalog and builds the seed products in file order.
func Parse(r io.Reader) ([]*entity.Product, error) {
	cfg := new(catalogFile)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if len(cfg.Products) == 0 {
		return nil, errEmptyCatalog
	}

	products := make([]*entity.Product, 0, len(cfg.Products))

	for _, spec := range cfg.Products {
		p, err := buildProduct(spec)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", spec.Name, err)
		}

		products = append(products, p)
	}

	return products, nil
}

func buildProduct(spec productSpec) (*entity.Product, error) {
	var (
		p   *entity.Product
		err error
	)

	switch spec.Type {
	case kindStocked:
		p, err = entity.NewProduct(spec.Name, spec.Price, spec.Quantity)
	case kindNonStocked:
		p, err = entity.NewNonStockedProduct(spec.Name, spec.Price)
	case kindLimited:
		p, err = entity.NewLimitedProduct(spec.Name, spec.Price, spec.Quantity, spec.Maximum)
	default:
		return nil, fmt.Errorf("unknown product type %q", spec.Type)
	}

	if err != nil {
		return nil, err
	}

	if spec.Promotion != nil {
		promo, err := buildPromotion(*spec.Promotion)
		if err != nil {
			return nil, err
		}

		p.SetPromotion(promo)
	}

	return p, nil
}

func buildPromotion(spec promotionSpec) (entity.Promotion, error) {
	switch spec.Type {
	case promoPercent:
		return entity.NewPercentOff(spec.Name, spec.Percent)
	case promoSecondHalfPrice:
		return entity.NewSecondItemHalfPrice(spec.Name)
	case promoThirdOneFree:
		return entity.NewBuyTwoGetOneFree(spec.Name)
	default:
		return nil, fmt.Errorf("unknown promotion type %q", spec.Type)
	}
}

// Default returns the built-in seed catalog used when no file is configured.
func Default() ([]*entity.Product, error) {
	macbook, err := entity.NewProduct("MacBook Air M2", 1450, 100)
	if err != nil {
		return nil, err
	}

	earbuds, err := entity.NewProduct("Bose QuietComfort Earbuds", 250, 500)
	if err != nil {
		return nil, err
	}

	pixel, err := entity.NewProduct("Google Pixel 7", 500, 250)
	if err != nil {
		return nil, err
	}

	license, err := entity.NewNonStockedProduct("Windows License", 125)
	if err != nil {
		return nil, err
	}

	shipping, err := entity.NewLimitedProduct("Shipping", 10, 250, 1)
	if err != nil {
		return nil, err
	}

	secondHalfPrice, err := entity.NewSecondItemHalfPrice("Second Half price!")
	if err != nil {
		return nil, err
	}

	thirdOneFree, err := entity.NewBuyTwoGetOneFree("Third One Free!")
	if err != nil {
		return nil, err
	}

	thirtyPercent, err := entity.NewPercentOff("30% off!", 30)
	if err != nil {
		return nil, err
	}

	macbook.SetPromotion(secondHalfPrice)
	earbuds.SetPromotion(thirdOneFree)
	license.SetPromotion(thirtyPercent)

	return []*entity.Product{macbook, earbuds, pixel, license, shipping}, nil
}
