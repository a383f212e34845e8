// Package locality turns free-form user input into canonical locality names.
//
// Matching is accent- and case-insensitive: "alcala de henares",
// "ALCALÁ DE HENARES" and "  Alcalá de Henares " all resolve to
// "Alcalá de Henares". Names are normalized once into an Index; a Resolver
// then keeps asking a Prompter until the answer matches an indexed name.
//
// Prompters:
//
//   - LinePrompter reads newline-terminated answers from any io.Reader and
//     writes prompts and warnings to an io.Writer (pipes, scripts, tests).
//   - Terminal front-ends implement Prompter themselves.
package locality
