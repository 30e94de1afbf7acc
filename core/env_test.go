package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_Get(t *testing.T) {
	t.Setenv("PIPESH_TEST_VAR", "value")

	env := NewEnvironment()
	env.Set("a", "6")

	assert.Equal(t, "6", env.Get("a"), "session variable")
	assert.Equal(t, "value", env.Get("PIPESH_TEST_VAR"), "environment fallback")
	assert.Equal(t, "", env.Get("aoaeibsoOQVWW"), "unset variable")
}

func TestEnvironment_SetShadowsProcess(t *testing.T) {
	t.Setenv("PIPESH_TEST_VAR", "value")

	env := NewEnvironment()
	env.Set("PIPESH_TEST_VAR", "new_value")

	assert.Equal(t, "new_value", env.Get("PIPESH_TEST_VAR"))
}
