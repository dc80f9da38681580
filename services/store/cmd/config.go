package cmd

import (
	"github.com/Nugamoto/bestbuy2.0/pkg/env"
)

type config struct {
	env.Service
	env.Catalog
}
