package main

import (
	"fmt"

	"github.com/owiklo/randfill"
	"github.com/owiklo/randfill/internal"
)

func main() {
	vec := make([]int, 10)
	randfill.FillSeeded(vec, 1, 10, 42)
	fmt.Println(internal.FormatSlice(vec))

	var arr [10]int
	randfill.FillSeeded(arr[:], 1, 10, 43)
	fmt.Println(internal.FormatSlice(arr[:]))

	single := make([]float32, 1)
	randfill.Fill(single, 1, 100)
	fmt.Println(internal.FormatSlice(single))
}
