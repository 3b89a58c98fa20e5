package railmap

import (
	"fmt"
	"strings"
)

// Color is a track color. NoColor marks the absent second track of a
// single-track segment; Gray tracks accept any one color in play but are
// accounted as their own resource by the card calculator.
type Color int

const (
	NoColor Color = iota
	Gray
	Purple
	White
	Blue
	Yellow
	Orange
	Black
	Red
	Green
)

var colorNames = [...]string{
	NoColor: "",
	Gray:    "Gray",
	Purple:  "Purple",
	White:   "White",
	Blue:    "Blue",
	Yellow:  "Yellow",
	Orange:  "Orange",
	Black:   "Black",
	Red:     "Red",
	Green:   "Green",
}

// Colors lists every real color in declaration order.
func Colors() []Color {
	return []Color{Gray, Purple, White, Blue, Yellow, Orange, Black, Red, Green}
}

// Valid reports whether c is a real color (not NoColor and not out of range).
func (c Color) Valid() bool {
	return c > NoColor && int(c) < len(colorNames)
}

func (c Color) String() string {
	if c == NoColor {
		return "None"
	}
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}

	return colorNames[c]
}

// ParseColor maps a case-insensitive token to a Color. "grey" is accepted
// as a spelling of Gray, "pink" as Purple (the card art uses both names).
func ParseColor(token string) (Color, error) {
	switch t := strings.ToLower(strings.TrimSpace(token)); t {
	case "grey":
		return Gray, nil
	case "pink":
		return Purple, nil
	default:
		for c := Gray; int(c) < len(colorNames); c++ {
			if strings.ToLower(colorNames[c]) == t {
				return c, nil
			}
		}
	}

	return NoColor, fmt.Errorf("%w: %q", ErrInvalidColor, token)
}

// MarshalText implements encoding.TextMarshaler so colors serialize by name.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColor, int(c))
	}

	return []byte(colorNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
