package tree

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// decodeName checks that raw is valid UTF-8 and returns it as display text.
func decodeName(raw string) (string, error) {
	s, _, err := transform.String(encoding.UTF8Validator, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, raw)
	}
	return s, nil
}
