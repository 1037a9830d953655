package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethod(t *testing.T) {
	for m := GET; m <= PATCH; m++ {
		assert.Equal(t, m, Parse(m.String()))
	}

	assert.Equal(t, Unknown, Parse("get"))
	assert.Equal(t, Unknown, Parse("PROPFIND"))
	assert.Equal(t, "UNKNOWN", Method(200).String())
}

func TestBodiless(t *testing.T) {
	for _, m := range []Method{GET, HEAD, OPTIONS, TRACE, CONNECT} {
		assert.True(t, Bodiless(m), m.String())
	}

	for _, m := range []Method{POST, PUT, PATCH, DELETE, Unknown} {
		assert.False(t, Bodiless(m), m.String())
	}
}
