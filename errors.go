package taxlot

import "errors"

var (
	// ErrUnknownMethod is returned for a lot matching method other than FIFO, LIFO or HIFO.
	ErrUnknownMethod = errors.New("taxlot: unknown lot matching method")

	// ErrUnknownKind is returned when a transaction kind cannot be parsed.
	ErrUnknownKind = errors.New("taxlot: unknown transaction kind")

	// ErrInvalidTransaction wraps every transaction validation failure.
	ErrInvalidTransaction = errors.New("taxlot: invalid transaction")
)
