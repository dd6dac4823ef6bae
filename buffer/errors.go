// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument covers malformed buffer geometry: non-positive
	// channel counts or alignment, negative capacity, byte lengths that
	// are not a multiple of the sample stride.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfMemory reports an allocation or exclusivity failure.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrTypeMismatch reports an element type that does not match the
	// buffer's declared sample format.
	ErrTypeMismatch = errors.New("element type does not match sample format")

	// ErrNotSupported reports an operation the buffer layout cannot
	// provide, such as a packed view over a planar buffer.
	ErrNotSupported = errors.New("operation not supported")
)

var (
	ErrChannelMismatch = fmt.Errorf("%w: channel count mismatch, remixing needs a Converter", ErrInvalidArgument)
	ErrFormatMismatch  = fmt.Errorf("%w: sample formats belong to different numeric types", ErrInvalidArgument)
	ErrSizeMismatch    = fmt.Errorf("%w: length must be a multiple of channels times bytes per sample", ErrInvalidArgument)
	ErrSizeOverflow    = fmt.Errorf("%w: allocation size overflows int32", ErrInvalidArgument)
)
