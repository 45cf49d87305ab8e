package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

type listTheme struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

type listOutput struct {
	Current *string           `json:"current"`
	Themes  []listTheme       `json:"themes"`
	Aliases map[string]string `json:"aliases"`
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered themes and aliases",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs, states, err := openStores()
		if err != nil {
			return err
		}

		cfg, err := configs.Load()
		if err != nil {
			return err
		}
		st, err := states.Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			payload := listOutput{
				Current: st.Current,
				Themes:  make([]listTheme, 0, len(cfg.Themes)),
				Aliases: cfg.Aliases,
			}
			for _, t := range cfg.Themes {
				payload.Themes = append(payload.Themes, listTheme{
					Name:   t.Name,
					Type:   t.Type.String(),
					Active: st.IsCurrent(t.Name),
				})
			}
			return WriteOutput(out, payload)
		}

		p := newPalette(out)
		fmt.Fprintln(out, "Themes:")
		for _, t := range cfg.Themes {
			if st.IsCurrent(t.Name) {
				fmt.Fprintf(out, "\t%s\n", p.active(t.Name+" *"))
				continue
			}
			fmt.Fprintf(out, "\t%s\n", t.Name)
		}

		fmt.Fprintln(out, "Aliases:")
		for _, alias := range cfg.AliasNames() {
			fmt.Fprintf(out, "\t%s -> %s\n", alias, cfg.Aliases[alias])
		}
		return nil
	},
}
