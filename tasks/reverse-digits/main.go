package main

import (
	"fmt"
	"os"
)

// reverseDigits reverses the decimal digits of n. Leading zeros of the
// reversed value disappear (1200 becomes 21). Values whose reversal does
// not fit in uint64 wrap around.
func reverseDigits(n uint64) uint64 {
	var reversed uint64
	for n > 0 {
		reversed = reversed*10 + n%10
		n /= 10
	}

	return reversed
}

func main() {
	var n uint64
	if _, err := fmt.Fscan(os.Stdin, &n); err != nil {
		return
	}

	fmt.Println(reverseDigits(n))
}
