package main

import (
	"fmt"
	"os"
)

// isLeapYear follows the Gregorian rule: every 4th year is a leap year,
// except century years, which must be divisible by 400.
func isLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

func main() {
	var year int
	if _, err := fmt.Fscan(os.Stdin, &year); err != nil {
		return
	}

	if isLeapYear(year) {
		fmt.Println("YES")
	} else {
		fmt.Println("NO")
	}
}
