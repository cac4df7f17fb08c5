package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToCents(t *testing.T) {
	assert.Equal(t, 0.0, RoundToCents(0))
	assert.Equal(t, 0.3, RoundToCents(0.1+0.2))
	assert.Equal(t, 10.46, RoundToCents(10.455))
	assert.Equal(t, -2.5, RoundToCents(-2.5))
}
