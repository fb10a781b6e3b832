// Package fixture builds small, deterministic graphs shared by tests across
// the module — in particular the 10x10 grid used by spec scenarios S1-S6.
package fixture

import "github.com/NatLabRockies/routee-compass-go/network"

// These constants describe the geometry of BuildGrid's output.
const (
	GridRows    = 10
	GridCols    = 10
	GridOriginX = -105.0
	GridOriginY = 40.0
	GridSpacing = 0.01
	// GridEdgesPerRow is the number of edges created per occupied row band
	// (horizontal + vertical edges originating in that row), matching the
	// stride of 19 used by scenario S2.
	GridEdgesPerRow = GridCols - 1 + GridCols
)

// Grid is a 10x10 grid graph at origin (-105.0, 40.0) with 0.01 degree
// spacing. Edges run east (increasing column) and north (increasing row);
// within each row band, horizontal edges are enumerated before the vertical
// edge at the same column, so edge ids increase left-to-right then bottom-up.
type Grid struct {
	Graph     *network.Graph
	VertexOf  map[[2]int]network.VertexId
	CoordOf   map[[2]int]network.EdgeId // (row, col) -> horizontal edge id starting at that cell
	VerticalOf map[[2]int]network.EdgeId // (row, col) -> vertical edge id starting at that cell
}

// BuildGrid constructs the shared 10x10 grid fixture.
func BuildGrid() *Grid {
	b := network.NewBuilder()
	vid := make(map[[2]int]network.VertexId, GridRows*GridCols)
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			vid[[2]int{r, c}] = b.AddVertex(network.Point{
				X: GridOriginX + float64(c)*GridSpacing,
				Y: GridOriginY + float64(r)*GridSpacing,
			})
		}
	}

	horiz := make(map[[2]int]network.EdgeId)
	vert := make(map[[2]int]network.EdgeId)
	var next network.EdgeId
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			if c+1 < GridCols {
				from, to := vid[[2]int{r, c}], vid[[2]int{r, c + 1}]
				geom := network.LineString{
					{X: GridOriginX + float64(c)*GridSpacing, Y: GridOriginY + float64(r)*GridSpacing},
					{X: GridOriginX + float64(c+1)*GridSpacing, Y: GridOriginY + float64(r)*GridSpacing},
				}
				_ = b.AddEdge(0, next, from, to, geom)
				horiz[[2]int{r, c}] = next
				next++
			}
			if r+1 < GridRows {
				from, to := vid[[2]int{r, c}], vid[[2]int{r + 1, c}]
				geom := network.LineString{
					{X: GridOriginX + float64(c)*GridSpacing, Y: GridOriginY + float64(r)*GridSpacing},
					{X: GridOriginX + float64(c)*GridSpacing, Y: GridOriginY + float64(r+1)*GridSpacing},
				}
				_ = b.AddEdge(0, next, from, to, geom)
				vert[[2]int{r, c}] = next
				next++
			}
		}
	}

	return &Grid{
		Graph:      b.Build(),
		VertexOf:   vid,
		CoordOf:    horiz,
		VerticalOf: vert,
	}
}
