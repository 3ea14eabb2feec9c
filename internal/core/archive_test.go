package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cran-recipes/internal/types"
)

func TestArchiveURL(t *testing.T) {
	require.Equal(t,
		"https://github.com/user/rpkg/archive/v1.0.0.tar.gz",
		ArchiveURL("https://github.com/user/rpkg", "v1.0.0"))
	require.Equal(t,
		"https://github.com/user/rpkg/archive/1.0.0.tar.gz",
		ArchiveURL("https://github.com/user/rpkg/", "1.0.0"))
}

func TestTemplateSourceURL(t *testing.T) {
	url := "https://github.com/user/rpkg/archive/1.0.0.tar.gz"
	got := TemplateSourceURL(url, types.ResolvedRef{Version: "1.0.0", Ref: "1.0.0"})
	require.Equal(t, "https://github.com/user/rpkg/archive/{{ version }}.tar.gz", got)
}

func TestTemplateSourceURLKeepsTagPrefix(t *testing.T) {
	url := "https://github.com/user/rpkg/archive/v1.0.0.tar.gz"
	got := TemplateSourceURL(url, types.ResolvedRef{Version: "1.0.0", Ref: "v1.0.0"})
	require.Equal(t, "https://github.com/user/rpkg/archive/v{{ version }}.tar.gz", got)
}
