package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLocalitiesCmd lists the locality names accepted by the prompts.
func newLocalitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "localities",
		Short: "List the localities of the network in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range a.index.Names() {
				if _, err := fmt.Fprintln(a.out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// newConfigCmd prints the effective configuration as YAML.
func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = a.out.Write(out)
			return err
		},
	}
}
