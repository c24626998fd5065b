package avatar

import (
	"fmt"
	"hash/fnv"
	"image/png"
	"io"
	"strings"
	"sync"
	"unicode"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
)

// DefaultSize is the edge length of generated avatars in pixels
const DefaultSize = 128

// gradients mirror the purple/blue palette of the UI
var gradients = [][2][3]float64{
	{{0.75, 0.52, 0.99}, {0.23, 0.51, 0.96}},
	{{0.58, 0.20, 0.92}, {0.31, 0.27, 0.90}},
	{{0.49, 0.23, 0.93}, {0.15, 0.39, 0.92}},
	{{0.66, 0.33, 0.97}, {0.39, 0.40, 0.95}},
}

var (
	fontOnce sync.Once
	boldFont *truetype.Font
	fontErr  error
)

// Initials returns up to two uppercase initials for name, or "?" when name has no letters
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// Generate draws a round gradient avatar with the user's initials and writes it as PNG.
// seed picks the gradient so one user always gets the same colours.
func Generate(w io.Writer, name, seed string, size int) error {
	if size <= 0 {
		size = DefaultSize
	}

	font, err := loadFont()
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}

	dc := gg.NewContext(size, size)
	s := float64(size)

	colors := gradients[pick(seed, len(gradients))]
	grad := gg.NewLinearGradient(0, 0, s, s)
	grad.AddColorStop(0, rgb(colors[0]))
	grad.AddColorStop(1, rgb(colors[1]))

	dc.DrawCircle(s/2, s/2, s/2)
	dc.SetFillStyle(grad)
	dc.Fill()

	face := truetype.NewFace(font, &truetype.Options{Size: s * 0.38})
	dc.SetFontFace(face)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(Initials(name), s/2, s/2, 0.5, 0.38)

	if err := png.Encode(w, dc.Image()); err != nil {
		return fmt.Errorf("encode avatar: %w", err)
	}
	return nil
}

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		boldFont, fontErr = truetype.Parse(gobold.TTF)
	})
	return boldFont, fontErr
}

func pick(seed string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return int(h.Sum32() % uint32(n))
}
