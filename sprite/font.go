package sprite

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	Regular   *opentype.Font
	Monospace *opentype.Font
)

var fontMap = map[string]struct {
	dst **opentype.Font
	ttf []byte
}{
	"regular":   {&Regular, goregular.TTF},
	"monospace": {&Monospace, gomono.TTF},
}

func loadFonts() (err error) {
	for name, f := range fontMap {
		*f.dst, err = opentype.Parse(f.ttf)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
	}
	return nil
}

var faceCache = make(map[*opentype.Font]map[float64]font.Face)

// Face returns a cached face of f at the given size.
func Face(f *opentype.Font, size float64) (font.Face, error) {
	if _, ok := faceCache[f]; !ok {
		faceCache[f] = make(map[float64]font.Face)
	}
	if face, ok := faceCache[f][size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	faceCache[f][size] = face
	return face, nil
}
