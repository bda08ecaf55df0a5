package version

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"runtime/debug"
	"strings"
	"testing"
)

func TestVersion_Archive(t *testing.T) {
	subtests := []struct {
		name        string
		gitDescribe string
		gitHash     string
		output      VersionInfo
	}{
		{
			name:        "describe",
			gitDescribe: "v0.1.0-3-gdeadbee",
			gitHash:     "deadbeefcafe",
			output:      VersionInfo{Version: "v0.1.0-3-gdeadbee", Commit: "deadbeefcafe"},
		},
		{
			name:        "old-git",
			gitDescribe: "%(describe)",
			gitHash:     "deadbeefcafe",
			output:      VersionInfo{Version: "0.1.0-gdeadbee", Commit: "deadbeefcafe"},
		},
	}

	for _, st := range subtests {
		t.Run(st.name, func(t *testing.T) {
			require.Equal(t, &st.output, Version("0.1.0", st.gitDescribe, st.gitHash))
		})
	}
}

func TestFromBuild(t *testing.T) {
	subtests := []struct {
		name     string
		settings []debug.BuildSetting
		output   VersionInfo
	}{
		{name: "none", output: VersionInfo{Version: "0.1.0"}},
		{
			name:     "clean",
			settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeefcafe"}, {Key: "vcs.modified", Value: "false"}},
			output:   VersionInfo{Version: "0.1.0-gdeadbee", Commit: "deadbeefcafe"},
		},
		{
			name:     "dirty",
			settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeefcafe"}, {Key: "vcs.modified", Value: "true"}},
			output:   VersionInfo{Version: "0.1.0-gdeadbee-dirty", Commit: "deadbeefcafe (modified)"},
		},
	}

	for _, st := range subtests {
		t.Run(st.name, func(t *testing.T) {
			require.Equal(t, &st.output, fromBuild("0.1.0", st.settings))
		})
	}
}

func TestVersionInfo_Print(t *testing.T) {
	var buf bytes.Buffer
	(&VersionInfo{Version: "0.1.0", Commit: "deadbeef"}).Print(&buf, "objhash")

	require.True(t, strings.HasPrefix(buf.String(), "objhash version: 0.1.0\n"))
	require.Contains(t, buf.String(), "Git commit: deadbeef")
}
