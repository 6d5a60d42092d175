package paths

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDepth_CountsDirectoryLevelsBelowRoot(t *testing.T) {
	cases := map[string]int{
		"index.html":                   0,
		"chi-siamo.html":               0,
		"articles/index.html":          1,
		"tag/linux/index.html":         2,
		"articles/page/2/index.html":   3,
		"article/some-slug/index.html": 2,
	}
	for outputPath, want := range cases {
		require.Equal(t, want, Depth(outputPath), "path %q", outputPath)
	}
}

func TestRelRoot_DepthZero_IsDot(t *testing.T) {
	require.Equal(t, ".", RelRoot("index.html"))
}

func TestRelRoot_DeepPage_RepeatsParentSegments(t *testing.T) {
	require.Equal(t, "..", RelRoot("articles/index.html"))
	require.Equal(t, "../..", RelRoot("tag/linux/index.html"))
	require.Equal(t, "../../..", RelRoot("articles/page/2/index.html"))
}

func TestResolve_AtRoot_TargetUnchanged(t *testing.T) {
	require.Equal(t, "assets", Resolve(".", "assets"))
	require.Equal(t, "articles/index.html", Resolve(".", "articles/index.html"))
}

func TestResolve_AtDepthTwo_PrefixesBase(t *testing.T) {
	relRoot := RelRoot("tag/linux/index.html")
	require.Equal(t, "../../assets", Resolve(relRoot, "assets"))
	require.Equal(t, "../../index.html", Resolve(relRoot, "index.html"))
}
