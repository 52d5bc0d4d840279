package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderID(t *testing.T) {
	id := GenerateOrderID()

	require.True(t, strings.HasPrefix(id, "FE"))
	_, err := strconv.ParseInt(strings.TrimPrefix(id, "FE"), 10, 64)
	assert.NoError(t, err, "id body should be numeric")

	// Ids generated in a tight loop must not all collide.
	seen := map[string]bool{id: true}
	for i := 0; i < 10; i++ {
		seen[GenerateOrderID()] = true
	}
	assert.Greater(t, len(seen), 1)
}
