// Where: cli/internal/mesh/palette.go
// What: Thread color lookup.
// Why: Threads files name colors the way embroiderers do, not as hex.
package mesh

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var palette = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xFF},
	"white":   {0xFF, 0xFF, 0xFF, 0xFF},
	"red":     {0xFF, 0x00, 0x00, 0xFF},
	"green":   {0x00, 0x80, 0x00, 0xFF},
	"blue":    {0x00, 0x00, 0xFF, 0xFF},
	"yellow":  {0xFF, 0xFF, 0x00, 0xFF},
	"orange":  {0xFF, 0xA5, 0x00, 0xFF},
	"purple":  {0x80, 0x00, 0x80, 0xFF},
	"pink":    {0xFF, 0xC0, 0xCB, 0xFF},
	"brown":   {0xA5, 0x2A, 0x2A, 0xFF},
	"gray":    {0x80, 0x80, 0x80, 0xFF},
	"grey":    {0x80, 0x80, 0x80, 0xFF},
	"cyan":    {0x00, 0xFF, 0xFF, 0xFF},
	"magenta": {0xFF, 0x00, 0xFF, 0xFF},
	"gold":    {0xFF, 0xD7, 0x00, 0xFF},
	"silver":  {0xC0, 0xC0, 0xC0, 0xFF},
	"navy":    {0x00, 0x00, 0x80, 0xFF},
	"teal":    {0x00, 0x80, 0x80, 0xFF},
	"maroon":  {0x80, 0x00, 0x00, 0xFF},
	"olive":   {0x80, 0x80, 0x00, 0xFF},
	"lime":    {0x00, 0xFF, 0x00, 0xFF},
	"ivory":   {0xFF, 0xFF, 0xF0, 0xFF},
	"beige":   {0xF5, 0xF5, 0xDC, 0xFF},
}

// ParseColor resolves a thread color. It accepts palette names
// (case-insensitive) and #RGB / #RRGGBB hex forms. An empty name means
// black, matching the original generator's default.
func ParseColor(name string) (color.RGBA, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return palette["black"], nil
	}
	if c, ok := palette[strings.ToLower(trimmed)]; ok {
		return c, nil
	}
	if strings.HasPrefix(trimmed, "#") {
		return parseHex(trimmed)
	}
	return color.RGBA{}, fmt.Errorf("unknown thread color %q", name)
}

func parseHex(value string) (color.RGBA, error) {
	hex := value[1:]
	switch len(hex) {
	case 3:
		var chars []byte
		for i := 0; i < 3; i++ {
			chars = append(chars, hex[i], hex[i])
		}
		hex = string(chars)
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", value)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", value)
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xFF,
	}, nil
}
