package renderer

import "image"

// tileSize is the edge length of the square work units handed to workers.
const tileSize = 64

// tile is one rectangular region of the frame.
type tile struct {
	id     int
	bounds image.Rectangle
}

// newTileGrid covers a width x height frame with non-overlapping tiles.
// Tiles at the right and bottom edges are clipped to the frame.
func newTileGrid(width, height, size int) []tile {
	var tiles []tile

	for y0 := 0; y0 < height; y0 += size {
		for x0 := 0; x0 < width; x0 += size {
			x1 := min(x0+size, width)
			y1 := min(y0+size, height)
			tiles = append(tiles, tile{id: len(tiles), bounds: image.Rect(x0, y0, x1, y1)})
		}
	}

	return tiles
}
