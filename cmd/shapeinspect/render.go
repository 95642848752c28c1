package main

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/shapestyle"
)

// halfBlock is drawn with the upper pixel as foreground and the lower
// pixel as background, packing two pixel rows into one terminal row.
const halfBlock = "▀"

// halfBlocks converts an image to terminal cells, compositing it over the
// backdrop color. The image height should be even.
func halfBlocks(img image.Image, backdrop shapestyle.RGBA) string {
	b := img.Bounds()
	styles := make(map[[2]string]lipgloss.Style)
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hexOver(img, x, y, backdrop)
			bottom := hexOf(backdrop)
			if y+1 < b.Max.Y {
				bottom = hexOver(img, x, y+1, backdrop)
			}
			k := [2]string{top, bottom}
			st, ok := styles[k]
			if !ok {
				st = lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Background(lipgloss.Color(bottom))
				styles[k] = st
			}
			sb.WriteString(st.Render(halfBlock))
		}
	}
	return sb.String()
}

func hexOver(img image.Image, x, y int, backdrop shapestyle.RGBA) string {
	c := shapestyle.FromColor(img.At(x, y))
	return hexOf(backdrop.Lerp(shapestyle.RGBA{R: c.R, G: c.G, B: c.B, A: 1}, c.A))
}

func hexOf(c shapestyle.RGBA) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}
