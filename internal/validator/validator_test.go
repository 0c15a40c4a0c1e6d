package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_FirstErrorWins(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	v.Check(false, "title", "must not be empty")
	v.Check(true, "author", "must be provided")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"title": "must be provided"}, v.Errors)
}

func TestIn(t *testing.T) {
	assert.True(t, In("lost", "available", "borrowed", "reserved", "lost"))
	assert.False(t, In("missing", "available", "borrowed"))
	assert.False(t, In("anything"))
}
