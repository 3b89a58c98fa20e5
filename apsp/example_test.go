package apsp_test

import (
	"fmt"

	"github.com/katalvlaran/ttrplan/apsp"
)

func ExampleGraph_ShortestPath() {
	g, err := apsp.New([]apsp.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 5},
	})
	if err != nil {
		panic(err)
	}
	d, _ := g.ShortestDistance("A", "C")
	fmt.Println(g.ShortestPath("A", "C"), d)
	fmt.Println(g.ShortestPath("C", "A"))
	// Output:
	// [A B C] 3
	// [C B A]
}
