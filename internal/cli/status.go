package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusOutput struct {
	Current *string `json:"current"`
	Type    string  `json:"type,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs, states, err := openStores()
		if err != nil {
			return err
		}

		st, err := states.Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		current, ok := st.CurrentName()
		if !ok {
			if IsJSONOutput() {
				return WriteOutput(out, statusOutput{})
			}
			fmt.Fprintln(out, "Current: unset")
			return nil
		}

		cfg, err := configs.Load()
		if err != nil {
			return err
		}
		t, found := cfg.FindTheme(current)

		if IsJSONOutput() {
			payload := statusOutput{Current: &current}
			if found {
				payload.Type = t.Type.String()
			}
			return WriteOutput(out, payload)
		}

		if !found {
			fmt.Fprintf(out, "Current: %s\n", current)
			return nil
		}
		p := newPalette(out)
		fmt.Fprintf(out, "Current: %s %s\n", t.Name, p.themeType(t.Type))
		return nil
	},
}
