package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	kinds := []error{ErrInvalidArgument, ErrInvalidState, ErrIO, ErrFormat}

	tests := []struct {
		err  error
		kind error
	}{
		{ErrInvalidDimension, ErrInvalidArgument},
		{ErrInvalidElementType, ErrInvalidArgument},
		{ErrInvalidFieldName, ErrInvalidArgument},
		{ErrValueOutOfRange, ErrInvalidArgument},
		{ErrShapeMismatch, ErrInvalidArgument},
		{ErrPointsExist, ErrInvalidState},
		{ErrRecordMismatch, ErrInvalidState},
		{ErrMalformedHeader, ErrFormat},
		{ErrMissingHeaderKey, ErrFormat},
		{ErrMissingDataMarker, ErrFormat},
		{ErrHeaderTooLarge, ErrFormat},
		{ErrUnsupportedObject, ErrFormat},
		{ErrUnsupportedData, ErrFormat},
		{ErrInvalidPointDim, ErrFormat},
		{ErrInvalidPointCount, ErrFormat},
		{ErrUnknownElementType, ErrFormat},
		{ErrTruncatedData, ErrFormat},
		{ErrRecordCount, ErrFormat},
		{ErrFieldCount, ErrFormat},
		{ErrInvalidValue, ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			for _, kind := range kinds {
				if kind == tt.kind {
					require.ErrorIs(t, tt.err, kind)
				} else {
					require.NotErrorIs(t, tt.err, kind)
				}
			}

			wrapped := fmt.Errorf("read points.mhd: %w", fmt.Errorf("%w: record 3", tt.err))
			require.True(t, errors.Is(wrapped, tt.err))
			require.True(t, errors.Is(wrapped, tt.kind))
		})
	}
}
