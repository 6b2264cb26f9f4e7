package fweh

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.NRGBA{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 255, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"cyan":        {0, 255, 255, 255},
	"magenta":     {255, 0, 255, 255},
	"transparent": {0, 0, 0, 0},
}

// ParseColor resolves a color name or hex string to an NRGBA value. It
// accepts the named colors above plus #RGB, #RRGGBB and #RRGGBBAA notation.
func ParseColor(s string) (color.NRGBA, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(s, hex)
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown color name: %s", s)
}

func parseHex(s, hex string) (color.NRGBA, error) {
	var digits []uint8
	for _, r := range hex {
		d, err := strconv.ParseUint(string(r), 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color: %s", s)
		}
		digits = append(digits, uint8(d))
	}
	switch len(digits) {
	case 3:
		// Short form, each digit doubled.
		return color.NRGBA{digits[0] * 17, digits[1] * 17, digits[2] * 17, 255}, nil
	case 6:
		return color.NRGBA{
			digits[0]<<4 | digits[1],
			digits[2]<<4 | digits[3],
			digits[4]<<4 | digits[5],
			255,
		}, nil
	case 8:
		return color.NRGBA{
			digits[0]<<4 | digits[1],
			digits[2]<<4 | digits[3],
			digits[4]<<4 | digits[5],
			digits[6]<<4 | digits[7],
		}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %s", s)
	}
}

// ParseGradient resolves a dash-separated color list, e.g. "blue-red" or
// "#000-#808080-white", preserving the order of the stops.
func ParseGradient(s string) ([]color.NRGBA, error) {
	parts := strings.Split(s, "-")
	stops := make([]color.NRGBA, 0, len(parts))
	for _, part := range parts {
		c, err := ParseColor(part)
		if err != nil {
			return nil, err
		}
		stops = append(stops, c)
	}
	return stops, nil
}
