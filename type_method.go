package taxlot

import (
	"fmt"
	"strings"
)

// Method defines the lot selection order used to match disposals to acquisitions.
type Method int

const (
	// FIFO (First-In, First-Out) matches the oldest lots first.
	FIFO Method = iota
	// LIFO (Last-In, First-Out) matches the newest lots first.
	LIFO
	// HIFO (Highest-In, First-Out) matches the lots with the highest cost first.
	HIFO
)

// Methods lists every supported method.
func Methods() []Method { return []Method{FIFO, LIFO, HIFO} }

// Valid reports whether m is a supported method.
func (m Method) Valid() bool { return m >= FIFO && m <= HIFO }

func (m Method) String() string {
	switch m {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case HIFO:
		return "hifo"
	default:
		return "unknown"
	}
}

// ParseMethod parses a method name, case insensitive.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	case "hifo":
		return HIFO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}
