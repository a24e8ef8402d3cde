package drawing_test

import (
	"fmt"

	"github.com/katalvlaran/lvldraw/drawing"
)

// ExampleTorus2d demonstrates the periodic write contract: coordinates
// wrap into [0,1) by floor-mod, and the metric measures through the
// nearest seam.
func ExampleTorus2d() {
	d := drawing.NewTorus2d(2)
	d.SetX(0, 1.25)  // wraps forward
	d.SetX(1, -0.25) // wraps backward

	x0, _ := d.X(0)
	x1, _ := d.X(1)
	fmt.Println("x0:", x0)
	fmt.Println("x1:", x1)

	buf := make([]float64, 2)
	fmt.Println("distance:", d.Delta(0, 1, buf))
	// Output:
	// x0: 0.25
	// x1: 0.75
	// distance: 0.5
}

// ExampleEuclidean2d_Centralize recenters a layout on its bounding-box
// midpoint before rendering.
func ExampleEuclidean2d_Centralize() {
	d := drawing.NewEuclidean2d(2)
	d.SetX(0, 2)
	d.SetX(1, 6)

	d.Centralize()
	x0, _ := d.X(0)
	x1, _ := d.X(1)
	fmt.Println(x0, x1)
	// Output:
	// -2 2
}
