package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
)

type VersionInfo struct {
	Version string
	Commit  string
}

// hashLen is the truncation length of commit hashes, the same as git describe uses.
const hashLen = 7

// Version determines version and commit information based on multiple data sources:
//   - Version information added by `git archive` in the remaining two parameters.
//   - A hardcoded version number passed as first parameter.
//   - Commit information added to the binary by `go build`.
//
// It's supposed to be called like this in combination with setting the `export-subst` attribute for the corresponding
// file in .gitattributes:
//
//	var Version = version.Version("0.1.0", "$Format:%(describe)$", "$Format:%H$")
//
// When exported using `git archive`, the placeholders are replaced in the file and this version information is
// preferred. Otherwise the hardcoded version is used and augmented with commit information from the build metadata.
func Version(version, gitDescribe, gitHash string) *VersionInfo {
	if !strings.HasPrefix(gitDescribe, "$") && !strings.HasPrefix(gitHash, "$") {
		return fromArchive(version, gitDescribe, gitHash)
	}

	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}

	return fromBuild(version, settings)
}

// fromArchive returns the version information substituted by `git archive`.
func fromArchive(version, gitDescribe, gitHash string) *VersionInfo {
	if strings.HasPrefix(gitDescribe, "%") {
		// Only Git 2.32+ expands %(describe).
		gitDescribe = version

		if len(gitHash) >= hashLen {
			gitDescribe += "-g" + gitHash[:hashLen]
		}
	}

	return &VersionInfo{Version: gitDescribe, Commit: gitHash}
}

// fromBuild augments version with the VCS information of the build settings.
func fromBuild(version string, settings []debug.BuildSetting) *VersionInfo {
	var commit string
	var modified bool

	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
		case "vcs.modified":
			modified, _ = strconv.ParseBool(setting.Value)
		}
	}

	if len(commit) >= hashLen {
		version += "-g" + commit[:hashLen]

		if modified {
			version += "-dirty"
			commit += " (modified)"
		}
	}

	return &VersionInfo{Version: version, Commit: commit}
}

// Print writes verbose version output of the program name to w.
func (v *VersionInfo) Print(w io.Writer, name string) {
	_, _ = fmt.Fprintf(w, "%s version: %s\n\n", name, v.Version)

	_, _ = fmt.Fprintln(w, "Build information:")
	_, _ = fmt.Fprintf(w, "  Go version: %s (%s, %s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if v.Commit != "" {
		_, _ = fmt.Fprintln(w, "  Git commit:", v.Commit)
	}
}
