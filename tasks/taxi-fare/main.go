package main

import (
	"fmt"
	"math"
	"os"
)

const (
	baseFare   = 4.00
	perKmFare  = 1.50
	includedKm = 2
)

// fare computes the price of a trip: the base fare covers the first two
// kilometers, every started kilometer beyond that costs extra.
func fare(km int) float64 {
	if km <= includedKm {
		return baseFare
	}

	return baseFare + perKmFare*math.Ceil(float64(km-includedKm))
}

func main() {
	var km int
	if _, err := fmt.Fscan(os.Stdin, &km); err != nil {
		return
	}

	fmt.Printf("%.2f\n", fare(km))
}
