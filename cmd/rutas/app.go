package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rutas/builder"
	"github.com/katalvlaran/rutas/core"
	"github.com/katalvlaran/rutas/internal/config"
	"github.com/katalvlaran/rutas/locality"
	"github.com/katalvlaran/rutas/report"
)

// app carries the streams and the state shared by every command of one run.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	v       *viper.Viper
	cfgFile string

	// populated by setup
	cfg     *config.Config
	logger  *slog.Logger
	network *builder.Network
	graph   *core.Graph
	index   *locality.Index
}

// newApp returns an app bound to the given streams.
func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut, v: config.New()}
}

// setup binds cmd's flags, loads the configuration, builds the logger and
// loads the network. It runs before every command.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: lvl}))

	return a.loadNetwork()
}

// loadNetwork reads --network, or the embedded reference network.
func (a *app) loadNetwork() error {
	var (
		n   *builder.Network
		g   *core.Graph
		err error
	)
	if a.cfg.Network != "" {
		n, g, err = builder.LoadFile(a.cfg.Network)
	} else {
		n, err = builder.ReferenceNetwork()
		if err == nil {
			g, err = n.Graph()
		}
	}
	if err != nil {
		return err
	}

	idx, err := locality.NewIndex(g)
	if err != nil {
		return err
	}

	a.network, a.graph, a.index = n, g, idx
	a.logger.Debug("network loaded",
		"name", g.Name(),
		"localities", g.Order(),
		"arcs", g.Size(),
		"source", sourceName(a.cfg.Network),
	)
	for _, e := range g.Asymmetries() {
		a.logger.Debug("one-way road", "from", e.From, "to", e.To, "distance", e.Weight)
	}

	return nil
}

// sourceName labels where the network came from.
func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}

	return path
}

// prompter picks the huh form when both ends are terminals and plain line
// input otherwise.
func (a *app) prompter() locality.Prompter {
	if isTerminal(a.in) && isTerminal(a.out) {
		return newFormPrompter(a.out, a.index.Names())
	}

	return locality.NewLinePrompter(a.in, a.out)
}

// styles resolves --color against the output stream.
func (a *app) styles() report.Styles {
	switch a.cfg.Color {
	case config.ColorNever:
		return report.PlainStyles()
	case config.ColorAlways:
		r := lipgloss.NewRenderer(a.out)
		r.SetColorProfile(termenv.TrueColor)
		return report.NewStyles(r)
	default:
		if !isTerminal(a.out) {
			return report.PlainStyles()
		}
		return report.NewStyles(lipgloss.NewRenderer(a.out))
	}
}

// isTerminal reports whether s is an *os.File attached to a terminal.
func isTerminal(s any) bool {
	f, ok := s.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
