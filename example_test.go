package randfill_test

import (
	"fmt"
	"slices"

	"github.com/owiklo/randfill"
)

func ExampleFill() {
	temperatures := make([]float64, 4)
	randfill.Fill(temperatures, 10, 30)
	for _, v := range temperatures {
		fmt.Println(v >= 10 && v < 30)
	}
	// Output:
	// true
	// true
	// true
	// true
}

func ExampleFillSeeded() {
	a := make([]int, 10)
	b := make([]int, 10)
	randfill.FillSeeded(a, 1, 10, 42)
	randfill.FillSeeded(b, 1, 10, 42)
	fmt.Println(slices.Equal(a, b))
	// Output: true
}

func ExampleSlice() {
	s := randfill.Slice(6, 7, 7)
	fmt.Println(s)
	// Output: [7 7 7 7 7 7]
}
