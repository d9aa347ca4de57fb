package matrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/heldkarp/matrix"
)

// ExampleRead parses the file format and prints the display form.
func ExampleRead() {
	in := "3\n0 2 9\n1 0 6\n15 7 0\n"

	dist, err := matrix.Read(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(matrix.Format(dist))
	// Output:
	// 0 2 9
	// 1 0 6
	// 15 7 0
}
