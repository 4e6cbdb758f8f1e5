package pure_utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))

	empty := Map([]int(nil), strconv.Itoa)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
