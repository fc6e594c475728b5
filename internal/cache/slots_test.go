package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "slots:query:0:from=2027-01-18", Key(0, "from=2027-01-18"))
	assert.NotEqual(t, Key(1, "q"), Key(2, "q"))
}
