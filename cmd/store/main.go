package main

import (
	"os"

	"github.com/Nugamoto/bestbuy2.0/services/store/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
