package graph

import (
	"log"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const fontSize = 12

// LoadFace tries each candidate font path in order and returns the first face
// that loads, so deployments can ship their own typeface (e.g. Noto Sans).
// When no candidate is usable it falls back to the embedded Go Regular face;
// rendering never fails for lack of a font file.
func LoadFace(paths []string) font.Face {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		face, err := gg.LoadFontFace(p, fontSize)
		if err != nil {
			log.Printf("[graph] failed to load font %s: %v", p, err)
			continue
		}
		log.Printf("[graph] font loaded from %s", p)
		return face
	}
	if len(paths) > 0 {
		log.Printf("[graph] no font file found, using embedded fallback")
	}
	return fallbackFace()
}

func fallbackFace() font.Face {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
