package lorcanaerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesSentinelForErrorsIs(t *testing.T) {
	err := Wrap(ErrUnknownCard, "card %q", "nobody")
	assert.True(t, errors.Is(err, ErrUnknownCard))
	assert.False(t, errors.Is(err, ErrMissingState))
	assert.Contains(t, err.Error(), "nobody")
	assert.Contains(t, err.Error(), "unknown card")
}
