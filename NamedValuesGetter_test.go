package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNamedValuesGetter(t *testing.T) {
	getter := NewNamedValuesGetter(map[string]*string{
		"price": _makeStringRef("10"),
		"name":  _makeStringRef("apple"),
		"row":   _makeStringRef("3"),
	})

	actual := getter([]string{"row", "not-exists1", "price"})

	assert.Len(t, actual, 3)
	assert.Equal(t, "3", *(actual[0]))
	assert.Nil(t, actual[1])
	assert.Equal(t, "10", *(actual[2]))

}

func _makeStringRef(value string) *string {
	return &value
}
