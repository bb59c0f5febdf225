// pkg/grid/coords.go
package grid

import "math"

// Pixel conversion helpers. The tile size is passed in rather than imported
// from config so the package stays free of game dependencies.

// TileCenter returns the pixel center of tile p.
func TileCenter(p Point, tileSize float64) (float64, float64) {
	return (float64(p.X) + 0.5) * tileSize, (float64(p.Y) + 0.5) * tileSize
}

// TileAt returns the tile containing the pixel position (x, y).
func TileAt(x, y, tileSize float64) Point {
	return Point{
		X: int(math.Floor(x / tileSize)),
		Y: int(math.Floor(y / tileSize)),
	}
}
