package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "unknown"
	assert.Equal(t, "dev", Short())

	Commit = "abc123"
	assert.Equal(t, "abc123", Short())

	Version = "v0.3.0"
	assert.Equal(t, "v0.3.0", Short())
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "blur v1 abc", Title("blur", "v1", "abc"))
	assert.Equal(t, "blur abc", Title("blur", " ", "abc"))
	assert.Equal(t, "", Title("", "", ""))
}
