package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dijkstra"
)

// ExampleDijkstra computes the cheapest commute across four Seattle
// neighborhoods and reconstructs the winning route.
func ExampleDijkstra() {
	// 1) Build the undirected route map.
	g := core.NewGraph()
	_ = g.AddEdge("QueenAnne", "CapitolHill", 3)
	_ = g.AddEdge("CapitolHill", "SODO", 7)
	_ = g.AddEdge("SODO", "Bellevue", 10)
	_ = g.AddEdge("QueenAnne", "Bellevue", 19)

	// 2) Single-source shortest paths from QueenAnne.
	res, err := dijkstra.Dijkstra(g, "QueenAnne")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Query a specific destination.
	path, cost, _ := res.PathTo("Bellevue")
	fmt.Printf("QueenAnne→Bellevue costs %d via %v\n", cost, path)

	// Output:
	// QueenAnne→Bellevue costs 19 via [QueenAnne Bellevue]
}

// ExampleResult_PathTo shows the unreachable-destination contract:
// no fabricated cost, a typed error instead.
func ExampleResult_PathTo() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddVertex("Z") // isolated island

	res, _ := dijkstra.Dijkstra(g, "A")
	if _, _, err := res.PathTo("Z"); err != nil {
		fmt.Println(err)
	}

	// Output:
	// dijkstra: destination unreachable from source: A→Z
}
