package percolation_test

import (
	"fmt"

	"github.com/lintang-b-s/Percolatorx/pkg/percolation"
)

// ExamplePercolation opens a column on a 3x3 grid plus an isolated bottom site.
// the isolated site stays not full after the grid percolates.
func ExamplePercolation() {
	p, err := percolation.NewPercolation(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 3}} {
		_ = p.Open(s[0], s[1])
	}

	full, _ := p.IsFull(3, 3)
	fmt.Println(p)
	fmt.Println("percolates:", p.Percolates(), "open:", p.NumberOfOpenSites(), "(3,3) full:", full)

	_, err = p.IsOpen(4, 1)
	fmt.Println(err)
	// Output:
	// #..
	// #..
	// #.#
	// percolates: true open: 4 (3,3) full: false
	// row 4 is not between 1 and 3
}
