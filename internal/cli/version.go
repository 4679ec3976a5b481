package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dateseq/dateseq/internal/buildinfo"
)

const defaultModulePath = "github.com/dateseq/dateseq"

type versionInfo struct {
	Version     string `json:"version"`
	ModulePath  string `json:"module_path"`
	Commit      string `json:"commit,omitempty"`
	ShortCommit string `json:"short_commit,omitempty"`
	CommitTime  string `json:"commit_time,omitempty"`
	BuildDate   string `json:"build_date,omitempty"`
	Modified    bool   `json:"modified"`
	GoVersion   string `json:"go_version"`
	GOOS        string `json:"goos"`
	GOARCH      string `json:"goarch"`
}

var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show dsq version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersionInfo()

		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}

		header := "dsq " + info.Version
		if info.ShortCommit != "" {
			header += fmt.Sprintf(" (%s)", info.ShortCommit)
		}
		if info.Modified {
			header += " dirty"
		}
		fmt.Println(header)
		fmt.Printf("module: %s\n", info.ModulePath)
		if info.Commit != "" {
			fmt.Printf("commit: %s\n", info.Commit)
		}
		if info.CommitTime != "" {
			fmt.Printf("commit_time: %s\n", info.CommitTime)
		}
		if info.BuildDate != "" {
			fmt.Printf("build_date: %s\n", info.BuildDate)
		}
		fmt.Printf("go: %s\n", info.GoVersion)
		fmt.Printf("platform: %s/%s\n", info.GOOS, info.GOARCH)

		return nil
	},
}

// currentVersionInfo merges module build info (release builds installed via
// `go install`, or dev builds inside a git checkout) with ldflags values
// stamped by the release pipeline. Build info wins where both are present.
func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}

	if buildInfo, ok := readBuildInfo(); ok && buildInfo != nil {
		if buildInfo.Main.Path != "" {
			info.ModulePath = buildInfo.Main.Path
		}
		info.Version = normalizeVersion(buildInfo.Main.Version)
		if buildInfo.GoVersion != "" {
			info.GoVersion = buildInfo.GoVersion
		}

		settings := make(map[string]string, len(buildInfo.Settings))
		for _, s := range buildInfo.Settings {
			settings[s.Key] = s.Value
		}
		if v := settings["GOOS"]; v != "" {
			info.GOOS = v
		}
		if v := settings["GOARCH"]; v != "" {
			info.GOARCH = v
		}
		info.Commit = settings["vcs.revision"]
		info.CommitTime = settings["vcs.time"]
		info.Modified = strings.EqualFold(settings["vcs.modified"], "true")
	}

	applyLdflagsFallback(&info)
	info.ShortCommit = shortCommit(info.Commit)

	return info
}

// normalizeVersion maps the toolchain's "(devel)" placeholder to plain "devel".
func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}

// shortCommit abbreviates a full revision hash for the one-line header.
func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

func applyLdflagsFallback(info *versionInfo) {
	if buildinfo.Version != "" && info.Version == "devel" {
		info.Version = normalizeVersion(buildinfo.Version)
	}
	if buildinfo.Commit != "" && info.Commit == "" {
		info.Commit = buildinfo.Commit
	}
	if buildinfo.Date != "" {
		info.BuildDate = buildinfo.Date
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
