package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
		{"ErrColumnNotFound", ErrColumnNotFound},
		{"ErrSheetNotFound", ErrSheetNotFound},
		{"ErrEmptyTable", ErrEmptyTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrUnsupportedFormat,
		ErrColumnNotFound,
		ErrSheetNotFound,
		ErrEmptyTable,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

// TestErrors_WithWrapping tests error wrapping behavior
func TestErrors_WithWrapping(t *testing.T) {
	wrapped := fmt.Errorf("column %q not found; available columns: %s: %w",
		"symbol", "id, name, score", ErrColumnNotFound)

	assert.True(t, errors.Is(wrapped, ErrColumnNotFound))
	assert.Contains(t, wrapped.Error(), "available columns")
	assert.False(t, errors.Is(wrapped, ErrUnsupportedFormat))
}

// TestErrors_FileErrorMessages tests that gene file errors are descriptive
func TestErrors_FileErrorMessages(t *testing.T) {
	assert.Equal(t, "unsupported file format", ErrUnsupportedFormat.Error())
	assert.Equal(t, "column not found", ErrColumnNotFound.Error())
	assert.Equal(t, "sheet not found", ErrSheetNotFound.Error())
	assert.Equal(t, "empty table", ErrEmptyTable.Error())
}
