package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment(t *testing.T) {
	env := NewEnvironment()
	_, ok := env.Get("x")
	assert.False(t, ok)
	assert.Zero(t, env.Len())
	assert.Empty(t, env.Names())

	env.set("x", 1)
	env.set("b", 2)
	env.set("x", 3)

	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, 2, env.Len())
	assert.Equal(t, []string{"b", "x"}, env.Names())
	assert.Equal(t, "map[b:2 x:3]", env.String())
}
