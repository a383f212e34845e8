package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rutas/internal/config"
	"github.com/katalvlaran/rutas/locality"
	"github.com/katalvlaran/rutas/report"
)

// Prompts shown when origin or destination are not given as flags.
const (
	promptOrigin      = "Ingrese la localidad de origen: "
	promptDestination = "Ingrese la localidad de destino: "
)

// newRootCmd builds the rutas command tree around a.
func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rutas",
		Short: "Route planner for a road network of localities",
		Long: `rutas asks for an origin and a destination and prints:

  - the shortest route and its distance
  - every alternative route without cycles
  - the longest route without cycles
  - the localities whose roads are all shorter than the threshold
  - whether every locality can be reached

Names are matched ignoring case and accents ("alcala" finds "Alcalá de Henares").
Without --network the embedded Comunidad de Madrid network is used.

Examples:
  rutas
  rutas --origin Madrid --destination Getafe
  rutas --network red.yaml --threshold 20
  RUTAS_COLOR=never rutas < answers.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}

	d := config.Default()
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file (default ./rutas.yaml if present)")
	pf.String(config.KeyNetwork, d.Network, "YAML network file replacing the embedded network")
	pf.String(config.KeyLogLevel, d.LogLevel, "log level: debug, info, warn or error")
	pf.String(config.KeyColor, d.Color, "colored output: auto, always or never")

	f := cmd.Flags()
	f.String(config.KeyOrigin, d.Origin, "origin locality (prompted when empty)")
	f.String(config.KeyDestination, d.Destination, "destination locality (prompted when empty)")
	f.Int64(config.KeyThreshold, d.Threshold, "roads shorter than this are short")
	f.Int(config.KeyMaxAttempts, d.MaxAttempts, "invalid answers allowed per prompt (0 = unlimited)")
	f.Int(config.KeyMaxPaths, d.MaxPaths, "maximum alternative routes listed (0 = all)")

	cmd.AddCommand(newLocalitiesCmd(a), newConfigCmd(a))

	return cmd
}

// run resolves both endpoints, builds the report and renders it.
func (a *app) run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	resolver := locality.NewResolver(a.index, locality.WithMaxAttempts(a.cfg.MaxAttempts))

	var p locality.Prompter
	endpoint := func(value, prompt string) (string, error) {
		if value != "" {
			return resolver.Check(value)
		}
		if p == nil {
			p = a.prompter()
		}
		return resolver.Resolve(ctx, p, prompt)
	}

	origin, err := endpoint(a.cfg.Origin, promptOrigin)
	if err != nil {
		return err
	}
	destination, err := endpoint(a.cfg.Destination, promptDestination)
	if err != nil {
		return err
	}
	a.logger.Info("route requested", "origin", origin, "destination", destination)

	r, err := report.Build(ctx, a.graph, origin, destination,
		report.WithThreshold(a.cfg.Threshold),
		report.WithUnit(a.network.DistanceUnit()),
		report.WithMaxPaths(a.cfg.MaxPaths),
		report.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	return report.Render(a.out, r, a.styles())
}
