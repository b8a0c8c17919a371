package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfoString(t *testing.T) {
	require.Equal(t, "v1.2.3", Info{Tag: "v1.2.3"}.String())
	require.Equal(t, "v1.2.3-dirty linux/amd64", Info{Tag: "v1.2.3", Dirty: true, Platform: "linux/amd64"}.String())
}

func TestVersion(t *testing.T) {
	info := Get()
	require.Equal(t, tag, info.Tag)
	require.Contains(t, Version(), info.Tag)
}
