package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rutas/core"
)

// Section titles, in output order.
const (
	TitleShortest     = "--- Ruta Más Corta ---"
	TitleAlternatives = "--- Rutas Alternativas sin Ciclos ---"
	TitleLongest      = "--- Ruta Más Larga sin Ciclos ---"
	TitleConnectivity = "--- Conectividad del Grafo ---"
)

// Verdicts printed by the connectivity section.
const (
	VerdictConnected    = "El grafo es conexo"
	VerdictDisconnected = "El grafo no es conexo"
)

// titleShortEdge formats the short-road section title for threshold and unit.
func titleShortEdge(threshold int64, unit string) string {
	return fmt.Sprintf("--- Localidades con Conexiones Cortas (<%d %s) ---", threshold, unit)
}

// Render writes the five sections of r to w, each preceded by a blank line.
func Render(w io.Writer, r *Report, s Styles) error {
	var b strings.Builder

	// 1. Shortest route
	section(&b, s, TitleShortest)
	if r.Shortest.Reachable {
		fmt.Fprintf(&b, "Ruta más corta entre %s y %s: %s con distancia de %s\n",
			r.Origin, r.Destination, s.route(r.Shortest.Path), s.distance(r.Shortest.Path.Weight, r.Unit))
	} else {
		b.WriteString(s.noRoute(r) + "\n")
	}

	// 2. Alternative routes
	section(&b, s, TitleAlternatives)
	fmt.Fprintf(&b, "Rutas alternativas sin ciclos entre %s y %s:\n", r.Origin, r.Destination)
	for _, p := range r.Alternatives {
		b.WriteString(s.route(p) + "\n")
	}

	// 3. Longest route
	section(&b, s, TitleLongest)
	if r.Longest.Found {
		fmt.Fprintf(&b, "Ruta más larga sin ciclos entre %s y %s: %s con distancia de %s\n",
			r.Origin, r.Destination, s.route(r.Longest.Path), s.distance(r.Longest.Path.Weight, r.Unit))
	} else {
		b.WriteString(s.noRoute(r) + "\n")
	}

	// 4. Short-road localities
	section(&b, s, titleShortEdge(r.Threshold, r.Unit))
	fmt.Fprintf(&b, "Localidades con conexiones cortas: %s\n", strings.Join(r.ShortEdge, ", "))

	// 5. Connectivity
	section(&b, s, TitleConnectivity)
	if r.Connected {
		b.WriteString(s.apply(s.Good, VerdictConnected) + "\n")
	} else {
		b.WriteString(s.apply(s.Bad, VerdictDisconnected) + "\n")
		if len(r.Unreached) > 0 {
			line := fmt.Sprintf("No alcanzables desde %s: %s", r.Root, strings.Join(r.Unreached, ", "))
			b.WriteString(s.apply(s.Muted, line) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// section writes a blank line and a styled title.
func section(b *strings.Builder, s Styles, title string) {
	b.WriteString("\n" + s.apply(s.Header, title) + "\n")
}

// route renders p as "A -> B -> C".
func (s Styles) route(p core.Path) string {
	return s.apply(s.Route, p.String())
}

// distance renders a weight with its unit.
func (s Styles) distance(w int64, unit string) string {
	return s.apply(s.Distance, fmt.Sprintf("%d %s", w, unit))
}

// noRoute is the line shown when the destination cannot be reached.
func (s Styles) noRoute(r *Report) string {
	return s.apply(s.Bad, fmt.Sprintf("No existe ruta entre %s y %s", r.Origin, r.Destination))
}
