package arena

import "errors"

var (
	// ErrNegativeSize indicates a request for a negative number of bytes.
	ErrNegativeSize = errors.New("arena: negative allocation size")

	// ErrForeignBlock indicates a Free of a block this arena did not allocate
	// (or already freed).
	ErrForeignBlock = errors.New("arena: block not owned by this arena")

	// ErrUnknownArena indicates an unrecognized arena name.
	ErrUnknownArena = errors.New("arena: unknown arena")
)
