package fonts

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Debug      FontName = "debug"
	DebugSmall FontName = "debug-small"
	Fallback   FontName = "fallback"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadDefaults registers the bundled Go Regular faces and a bitmap fallback.
func LoadDefaults() error {
	fonts[Fallback] = text.NewGoXFace(basicfont.Face7x13)

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("fonts: parse go regular: %w", err)
	}
	fonts[Debug] = &text.GoTextFace{Source: source, Size: 14}
	fonts[DebugSmall] = &text.GoTextFace{Source: source, Size: 11}
	return nil
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		if fallback, ok := fonts[Fallback]; ok {
			return fallback
		}
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
