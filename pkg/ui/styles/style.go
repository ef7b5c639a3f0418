package styles

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
)

// ErrUnknownToken is returned for style words Parse does not understand.
var ErrUnknownToken = errors.New("unknown style token")

var namedColors = map[string]int{
	"black":  0,
	"red":    1,
	"green":  2,
	"yellow": 3,
	"blue":   4,
	"purple": 5,
	"cyan":   6,
	"white":  7,
}

// Parse turns a style string such as "bold purple" or "fg:#c0ffee bg:236
// underline" into a lipgloss style. Bare colors set the foreground. An empty
// string or "none" yields an empty style.
func Parse(spec string) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()

	for _, token := range strings.Fields(strings.ToLower(spec)) {
		switch token {
		case "none":
			style = lipgloss.NewStyle()
		case "bold":
			style = style.Bold(true)
		case "italic":
			style = style.Italic(true)
		case "underline":
			style = style.Underline(true)
		case "dimmed":
			style = style.Faint(true)
		case "inverted":
			style = style.Reverse(true)
		case "strikethrough":
			style = style.Strikethrough(true)
		default:
			target, value := "fg", token
			if prefix, rest, ok := strings.Cut(token, ":"); ok {
				target, value = prefix, rest
			}
			c, err := parseColor(value)
			if err != nil {
				return lipgloss.NewStyle(), fmt.Errorf("%w %q", ErrUnknownToken, token)
			}
			switch target {
			case "fg":
				style = style.Foreground(c)
			case "bg":
				style = style.Background(c)
			default:
				return lipgloss.NewStyle(), fmt.Errorf("%w %q", ErrUnknownToken, token)
			}
		}
	}

	return style, nil
}

func parseColor(value string) (color.Color, error) {
	if strings.HasPrefix(value, "bright-") {
		if n, ok := namedColors[strings.TrimPrefix(value, "bright-")]; ok {
			return lipgloss.Color(strconv.Itoa(n + 8)), nil
		}
		return nil, ErrUnknownToken
	}
	if n, ok := namedColors[value]; ok {
		return lipgloss.Color(strconv.Itoa(n)), nil
	}
	if strings.HasPrefix(value, "#") && (len(value) == 7 || len(value) == 4) {
		if _, err := strconv.ParseUint(value[1:], 16, 32); err == nil {
			return lipgloss.Color(value), nil
		}
		return nil, ErrUnknownToken
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(value), nil
	}
	return nil, ErrUnknownToken
}
