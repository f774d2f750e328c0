// Package hexcodec maps 8-bit color channels to and from their two-digit
// hexadecimal text form.
package hexcodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidHexFormat is returned when a hex color or channel pair cannot be decoded.
	ErrInvalidHexFormat = errors.New("invalid hex color format")
	// ErrOutOfRange is returned when a channel value is outside [0, 255].
	ErrOutOfRange = errors.New("value out of range")
)

// MaxChannel is the largest value an 8-bit channel can hold.
const MaxChannel = 255

// Encode returns the two-digit lowercase hex form of a channel, zero-padded.
func Encode(channel int) (string, error) {
	if channel < 0 || channel > MaxChannel {
		return "", fmt.Errorf("channel %d: %w", channel, ErrOutOfRange)
	}
	return fmt.Sprintf("%02x", channel), nil
}

// Decode parses a two-character hex pair (case-insensitive) into a channel value.
func Decode(pair string) (int, error) {
	if len(pair) != 2 {
		return 0, fmt.Errorf("channel %q: want 2 digits: %w", pair, ErrInvalidHexFormat)
	}
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("channel %q: %w", pair, ErrInvalidHexFormat)
	}
	return int(v), nil
}

// Normalize strips a leading '#' and expands the 3-digit shorthand form.
// Bodies of any other length are returned unchanged.
func Normalize(input string) string {
	body := strings.TrimPrefix(input, "#")
	if len(body) != 3 {
		return body
	}

	var sb strings.Builder
	sb.Grow(6)
	for i := 0; i < len(body); i++ {
		sb.WriteByte(body[i])
		sb.WriteByte(body[i])
	}
	return sb.String()
}

// Parse decodes a hex color such as "#1a2b3c", "1A2B3C" or "#abc" into its
// red, green and blue channels.
func Parse(input string) ([3]int, error) {
	var out [3]int

	body := Normalize(strings.TrimSpace(input))
	if len(body) != 6 {
		return out, fmt.Errorf("%q: want 3 or 6 hex digits: %w", input, ErrInvalidHexFormat)
	}

	for i := range out {
		v, err := Decode(body[i*2 : i*2+2])
		if err != nil {
			return out, fmt.Errorf("%q: %w", input, err)
		}
		out[i] = v
	}
	return out, nil
}

// Format encodes three channels as "#rrggbb".
func Format(r, g, b int) (string, error) {
	var sb strings.Builder
	sb.Grow(7)
	sb.WriteByte('#')
	for _, c := range [3]int{r, g, b} {
		s, err := Encode(c)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}
