package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	all := []error{ErrNotFound, ErrInvalidInput, ErrInvalidInterval, ErrRegistryClosed}

	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("set interval: %w", ErrInvalidInterval)

	assert.ErrorIs(t, wrapped, ErrInvalidInterval)
	assert.Contains(t, wrapped.Error(), "invalid interval")
}
