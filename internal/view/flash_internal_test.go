package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, toStrings([]interface{}{"a", 42, nil, "b"}))
	assert.Equal(t, []string{}, toStrings(nil))
}
