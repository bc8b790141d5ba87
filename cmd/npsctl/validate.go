package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/proverbs-one/npslocator/internal/ui"
)

func newValidateCmd() *cobra.Command {
	var (
		registryPath string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a registry file loads cleanly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := loadLocator(cmd.Context(), registryPath, "mi")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s: %d agents\n", color.GreenString("✓"), registryPath, svc.Size())
			if verbose {
				agents := svc.Agents(cmd.Context())
				for i := range agents {
					fmt.Fprintln(out, "  "+ui.FormatAgent(&agents[i]))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&registryPath, "registry", "r", defaultRegistry, "agent registry file (YAML or JSON)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every agent")

	return cmd
}
