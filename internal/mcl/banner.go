package mcl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerRaw = `
███╗   ███╗ ██████╗██╗
████╗ ████║██╔════╝██║
██╔████╔██║██║     ██║
██║╚██╔╝██║██║     ██║
██║ ╚═╝ ██║╚██████╗███████╗
╚═╝     ╚═╝ ╚═════╝╚══════╝
`

type ColorRGB struct {
	R, G, B int
}

func (c ColorRGB) ToHex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func interpolateRGB(start, end ColorRGB, factor float64) ColorRGB {
	return ColorRGB{
		R: int(float64(start.R) + factor*float64(end.R-start.R)),
		G: int(float64(start.G) + factor*float64(end.G-start.G)),
		B: int(float64(start.B) + factor*float64(end.B-start.B)),
	}
}

// GetBannerANSI renders the banner as a grass block: green on top fading
// into dirt.
func GetBannerANSI() string {
	lines := strings.Split(strings.Trim(bannerRaw, "\n"), "\n")
	if len(lines) == 0 {
		return ""
	}

	grass := ColorRGB{R: 0x5d, G: 0x9b, B: 0x3a}
	moss := ColorRGB{R: 0xa3, G: 0xbe, B: 0x8c}
	dirt := ColorRGB{R: 0x8b, G: 0x6a, B: 0x45}

	var sb strings.Builder
	for y, line := range lines {
		vFactor := float64(y) / float64(len(lines)-1)
		var c ColorRGB
		if vFactor < 0.34 {
			c = interpolateRGB(grass, moss, vFactor*3)
		} else {
			c = interpolateRGB(moss, dirt, (vFactor-0.34)/0.66)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.ToHex()))
		sb.WriteString(style.Render(line))
		sb.WriteRune('\n')
	}
	return sb.String()
}

func GetBannerPlain() string {
	return strings.Trim(bannerRaw, "\n")
}
