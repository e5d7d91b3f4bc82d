package blob

import (
	"github.com/rs/zerolog"

	"github.com/arloliu/metablob/format"
	"github.com/arloliu/metablob/internal/options"
)

// Option represents a functional option for configuring a Blob at construction.
type Option = options.Option[*Blob]

// WithElementType sets the numeric kind of coordinates and auxiliary values.
// The default is MET_FLOAT.
func WithElementType(t format.ElementType) Option {
	return options.New(func(b *Blob) error {
		return b.SetElementType(t)
	})
}

// WithBinaryMode selects binary records for Write. The default is ASCII.
func WithBinaryMode(binary bool) Option {
	return options.NoError(func(b *Blob) {
		b.SetBinaryMode(binary)
	})
}

// WithID sets the object identifier. The default is -1.
func WithID(id int) Option {
	return options.NoError(func(b *Blob) {
		b.SetID(id)
	})
}

// WithName sets the object name.
func WithName(name string) Option {
	return options.NoError(func(b *Blob) {
		b.SetName(name)
	})
}

// WithComment sets the free text comment.
func WithComment(comment string) Option {
	return options.NoError(func(b *Blob) {
		b.SetComment(comment)
	})
}

// WithAuxFields names the auxiliary values carried by every point.
func WithAuxFields(names ...string) Option {
	return options.New(func(b *Blob) error {
		return b.SetAuxFields(names...)
	})
}

// WithLogger sets the logger used to report reads and writes.
// By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(b *Blob) {
		b.logger = logger.With().Str("component", "blob").Logger()
	})
}
