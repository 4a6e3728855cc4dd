package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version of testgen, the commit it was built from and the Go version used to build it.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			for _, line := range versionLines(info, ok) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines renders build info; a missing main version prints as unknown.
func versionLines(info *debug.BuildInfo, ok bool) []string {
	if !ok || info == nil {
		return []string{"testgen version\t " + unknownVersion}
	}

	version := info.Main.Version
	if version == "" || version == "(devel)" {
		version = unknownVersion
	}

	lines := []string{"testgen version\t " + version}
	if info.Main.Path != "" {
		lines = append(lines, "module\t\t "+info.Main.Path)
	}

	var revision, modified string

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}

	if revision != "" {
		if modified == "true" {
			revision += " (modified)"
		}

		lines = append(lines, "commit\t\t "+revision)
	}

	return append(lines, fmt.Sprintf("go version\t %s", info.GoVersion))
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
