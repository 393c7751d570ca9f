package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, GetVersion(), info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestGetVersion_FallsBackWhenCleared(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = ""
	assert.Equal(t, "dev", GetVersion())

	Version = "2.0.0"
	assert.Equal(t, "2.0.0", GetVersion())
}

func TestGetShortVersion(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origCommit }()

	Version = "1.1.0"

	GitCommit = ""
	assert.Equal(t, "1.1.0", GetShortVersion())

	GitCommit = "abcdef1234567890"
	assert.Equal(t, "1.1.0-abcdef1", GetShortVersion())
}
