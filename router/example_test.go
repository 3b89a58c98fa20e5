package router_test

import (
	"fmt"

	"github.com/katalvlaran/ttrplan/cards"
	"github.com/katalvlaran/ttrplan/railmap"
	"github.com/katalvlaran/ttrplan/router"
)

func Example() {
	r, err := router.New(railmap.MustUSA(), router.WithPointImportance(0.1))
	if err != nil {
		panic(err)
	}

	path, _ := r.ShortestPath("Los Angeles", "Denver")
	fmt.Println(path)

	bundle, _ := r.MinSpanningTreeOfShortestRoutes([]string{"Calgary", "Salt Lake City"})
	fmt.Println(r.RequiredTrains(bundle), "trains,", r.GainPoints(bundle), "points")

	summary, _ := cards.Feasibility(bundle)
	fmt.Println(summary)
	// Output:
	// [Los Angeles Phoenix Denver]
	// 7 trains, 11 points
	// map[Gray:{4 4} Purple:{3 3}]
}
