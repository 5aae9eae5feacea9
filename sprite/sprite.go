package sprite

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// CellSize is the edge length of a cell sprite in pixels.
const CellSize = 32

var Cell *ebiten.Image

// Load builds the sprites and parses the fonts. It must be called before the game loop starts.
func Load() (err error) {
	Cell = ebiten.NewImageFromImage(CellImage(CellSize))
	if err := loadFonts(); err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	return nil
}

// CellImage draws a white bevelled square. It is tinted per piece when drawn.
func CellImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	bevel := max(size/8, 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var c color.NRGBA
			switch {
			case x == size-1 || y == size-1:
				c = color.NRGBA{}
			case x < bevel || y < bevel:
				c = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			case x >= size-1-bevel || y >= size-1-bevel:
				c = color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}
			default:
				c = color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
