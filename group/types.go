package group

import "errors"

// Sentinel errors for group enumeration.
var (
	// ErrNoGenerators is returned when FromGenerators receives no matrices.
	ErrNoGenerators = errors.New("group: at least one generator required")

	// ErrTooManyElements is returned when closure exceeds the configured
	// element limit, which usually means the generator set is not finite.
	ErrTooManyElements = errors.New("group: element limit exceeded during closure")

	// ErrInverseResolution indicates a non-identity element whose inverse
	// resolved to the identity. This is an internal consistency failure of
	// the closure itself, not a user input error.
	ErrInverseResolution = errors.New("group: inverse resolution produced identity")
)

// Element is an opaque handle into a Group's element table. Handle 0 is
// always the identity; handles 1..g are the generators in input order.
type Element int

// Identity is the handle of the identity element of every Group.
const Identity Element = 0

// DefaultMaxElements bounds closure when no explicit limit is given.
const DefaultMaxElements = 65536

// Option configures group enumeration via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for FromGenerators.
type Options struct {
	// MaxElements aborts closure with ErrTooManyElements once the table
	// would grow beyond this many elements. Must be positive.
	MaxElements int
}

// DefaultOptions returns Options with MaxElements = DefaultMaxElements.
func DefaultOptions() Options {
	return Options{MaxElements: DefaultMaxElements}
}

// WithMaxElements overrides the closure element limit.
func WithMaxElements(n int) Option {
	return func(o *Options) { o.MaxElements = n }
}
