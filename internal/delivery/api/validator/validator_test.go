package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct {
	Lat  float64 `validate:"latitude"`
	Lng  float64 `validate:"longitude"`
	Name string  `validate:"required"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&point{Lat: 33.7224, Lng: 73.0597, Name: "fair"}))
	assert.Error(t, v.Validate(&point{Lat: 91, Lng: 73.0597, Name: "fair"}))
	assert.Error(t, v.Validate(&point{Lat: 33, Lng: 181, Name: "fair"}))
	assert.Error(t, v.Validate(&point{Lat: 33, Lng: 73}))
}
