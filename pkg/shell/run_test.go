package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_defaults(t *testing.T) {
	assert.Equal(t, "Auto Mute", Options{}.title())
	assert.Equal(t, "Auto Mute", Options{}.tooltip())
	assert.Equal(t, "foo", Options{Title: "foo"}.tooltip())
	assert.Equal(t, "bar", Options{Title: "foo", Tooltip: "bar"}.tooltip())
}
