package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pathsCmd)
}

type pathsOutput struct {
	Config string `json:"config"`
	State  string `json:"state"`
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the config and state file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, pathsOutput{Config: paths.ConfigFile(), State: paths.StateFile()})
		}

		fmt.Fprintf(out, "Config: %s\n", paths.ConfigFile())
		fmt.Fprintf(out, "State:  %s\n", paths.StateFile())
		return nil
	},
}
