package gallery

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// upperHalfBlock draws the top pixel as foreground and the bottom pixel as
// background, so each terminal cell shows two image rows.
const upperHalfBlock = "▀"

// RenderHalfBlocks renders img as rows of true-colour half-block cells.
// An odd final row is paired with a transparent (default) background.
func RenderHalfBlocks(img image.Image) string {
	if img == nil {
		return ""
	}

	bounds := img.Bounds()
	var b strings.Builder

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img, x, y))
			if y+1 < bounds.Max.Y {
				style = style.Background(hexColor(img, x, y+1))
			}
			b.WriteString(style.Render(upperHalfBlock))
		}
		if y+2 < bounds.Max.Y {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func hexColor(img image.Image, x, y int) lipgloss.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
