package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPwd(t *testing.T) {
	sys := newTestOS()

	out, err := Pwd(sys, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, strp("/home/test"), out)

	// Arguments and input are ignored.
	out, err = Pwd(sys, []string{"1", "24", "try"}, strp("duck"))
	assert.Nil(t, err)
	assert.Equal(t, strp("/home/test"), out)
}
