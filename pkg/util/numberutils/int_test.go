package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToIntWithError(t *testing.T) {
	value, err := ToIntWithError(" 12")
	require.NoError(t, err)
	assert.Equal(t, 12, value)

	value, err = ToIntWithError("-7 ")
	require.NoError(t, err)
	assert.Equal(t, -7, value)

	_, err = ToIntWithError("rainy")
	assert.Error(t, err)

	_, err = ToIntWithError("")
	assert.Error(t, err)
}
