package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct{}

func (*recorder) Rejected(string, error) {}

type rejecter interface {
	Rejected(string, error)
}

func TestIsNil(t *testing.T) {
	var typedNil *recorder
	var r rejecter = typedNil
	var fn func()

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(r))
	assert.True(t, IsNil(fn))
	assert.True(t, IsNil(map[string]int(nil)))
	assert.False(t, IsNil(&recorder{}))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
}
