// Package assets empaqueta recursos estáticos dentro del binario.
package assets

import _ "embed"

// ExampleCatalog es el catálogo CSV de ejemplo que se carga al arranque y
// sirve como catálogo inicial de las sesiones nuevas. Pasa por la misma
// tubería de ingesta que los archivos subidos por el usuario.
//
//go:embed products_example.csv
var ExampleCatalog []byte
