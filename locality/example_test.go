package locality_test

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rutas/builder"
	"github.com/katalvlaran/rutas/locality"
)

// ExampleNormalize shows accent- and case-insensitive keys.
func ExampleNormalize() {
	fmt.Println(locality.Normalize("  Alcalá de HENARES "))
	// Output: alcala de henares
}

// ExampleResolver_Resolve reads answers from a stream until one is valid.
func ExampleResolver_Resolve() {
	g, _ := builder.Reference()
	idx, _ := locality.NewIndex(g)
	r := locality.NewResolver(idx)

	// Prompts are discarded; the first answer is rejected, the second accepted.
	p := locality.NewLinePrompter(strings.NewReader("Toledo\nmostoles\n"), io.Discard)
	name, err := r.Resolve(context.Background(), p, "Ingrese la localidad de origen: ")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(name)
	// Output: Móstoles
}
