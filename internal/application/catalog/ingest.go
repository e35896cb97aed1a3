// Package catalog implementa la ingesta de catálogos de productos desde CSV:
// validación estructural de encabezados, mapeo de filas con alias bilingües
// (español/inglés) y filtrado de filas inválidas.
//
// Política de errores: una celda malformada nunca aborta la ingesta (degrada
// vía sanitize y la fila se descarta en el filtro final); el archivo completo
// falla solo por estructura inválida, error de lectura o resultado vacío.
package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/pkg/logger"
	"github.com/jhoicas/cotizador-api/pkg/sanitize"
	"github.com/jhoicas/cotizador-api/pkg/textfold"
)

// Campos canónicos de una fila de producto.
const (
	fieldID          = "id"
	fieldName        = "name"
	fieldDescription = "description"
	fieldPrice       = "price"
	fieldUnit        = "unit"
	fieldCategory    = "category"
)

// aliases mapea cada campo canónico a sus encabezados aceptados
// (comparación exacta tras textfold.Fold: insensible a mayúsculas y acentos).
var aliases = map[string][]string{
	fieldID:          {"id"},
	fieldName:        {"name", "nombre"},
	fieldDescription: {"description", "descripcion"},
	fieldPrice:       {"price", "precio"},
	fieldUnit:        {"unit", "unidad"},
	fieldCategory:    {"category", "categoria"},
}

// Conceptos mínimos para pasar la validación estructural. Basta que un
// encabezado contenga alguno de estos textos (condición "alguno de": un
// archivo solo con columna de precio pasa la validación; sus filas caerán
// luego en el filtro por nombre vacío).
var requiredConcepts = [][]string{
	{"name", "nombre"},
	{"price", "precio"},
}

// Pipeline es la tubería de ingesta CSV. Sin estado entre llamadas.
type Pipeline struct {
	log *logger.Logger
}

// NewPipeline construye la tubería.
func NewPipeline(log *logger.Logger) *Pipeline {
	return &Pipeline{log: log}
}

// ValidateStructure lee solo la fila de encabezados y reporta si el archivo
// contiene al menos una columna de nombre o de precio. Nunca retorna error:
// cualquier fallo de lectura o parseo se reporta como false.
func (p *Pipeline) ValidateStructure(data []byte) bool {
	r := csvReader(decodeUTF8(data))
	header, err := r.Read()
	if err != nil {
		return false
	}
	for _, concepts := range requiredConcepts {
		for _, h := range header {
			for _, c := range concepts {
				if textfold.Contains(h, c) {
					return true
				}
			}
		}
	}
	return false
}

// Parse mapea el archivo completo a productos: resuelve alias de encabezados,
// sanitiza cada campo y descarta filas con nombre vacío o precio <= 0.
// Retorna error (envolviendo domain.ErrIngestionFailed) solo si la división
// en filas falla; una lista vacía no es error en esta capa.
func (p *Pipeline) Parse(data []byte) ([]entity.Product, error) {
	start := time.Now()

	records, err := csvReader(decodeUTF8(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIngestionFailed, err)
	}
	if len(records) == 0 {
		return []entity.Product{}, nil
	}

	cols := resolveColumns(records[0])

	products := make([]entity.Product, 0, len(records)-1)
	dropped := 0
	for idx, row := range records[1:] {
		if isEmptyRow(row) {
			continue
		}
		prod := mapRow(row, cols, idx)
		if prod.Name == "" || !prod.Price.IsPositive() {
			dropped++
			continue
		}
		products = append(products, prod)
	}

	p.log.Debug().
		Int("filas", len(records)-1).
		Int("validas", len(products)).
		Int("descartadas", dropped).
		Dur("duracion", time.Since(start)).
		Msg("catálogo CSV parseado")

	return products, nil
}

// Ingest es el punto de entrada de dos fases: valida la estructura y luego
// parsea, de modo que no sea posible parsear sin validar.
//
// Errores posibles:
//   - domain.ErrMissingColumns   si faltan las columnas requeridas.
//   - domain.ErrIngestionFailed  (envuelto) si la lectura de filas falla.
//   - domain.ErrNoValidProducts  si ninguna fila pasa el filtro.
func (p *Pipeline) Ingest(data []byte) ([]entity.Product, error) {
	if !p.ValidateStructure(data) {
		return nil, domain.ErrMissingColumns
	}
	products, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNoValidProducts
	}
	return products, nil
}

// ── Internos ──────────────────────────────────────────────────────────────────

// csvReader configura el lector tolerante: filas de largo variable y comillas
// laxas, como exportan las planillas reales.
func csvReader(data []byte) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

// decodeUTF8 garantiza UTF-8 válido. Descarta el BOM que Excel antepone en
// sus exportes "CSV UTF-8" (pegaría al primer encabezado). Si los bytes no
// son UTF-8, intenta Windows-1252 (exportes de Excel en español); como último
// recurso reemplaza los bytes inválidos por U+FFFD.
func decodeUTF8(data []byte) []byte {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return data
	}
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil && utf8.Valid(decoded) {
		return decoded
	}
	return bytes.ToValidUTF8(data, []byte("�"))
}

// resolveColumns asigna a cada campo canónico el índice de su columna.
// El primer encabezado que calce con un alias gana; -1 si no existe.
func resolveColumns(header []string) map[string]int {
	cols := make(map[string]int, len(aliases))
	for field := range aliases {
		cols[field] = -1
	}
	for j, h := range header {
		folded := textfold.Fold(h)
		for field, names := range aliases {
			if cols[field] != -1 {
				continue
			}
			for _, n := range names {
				if folded == n {
					cols[field] = j
					break
				}
			}
		}
	}
	return cols
}

// mapRow construye un producto desde una fila ya dividida. idx es la posición
// de la fila entre las filas de datos (base 0), usada para el id generado.
func mapRow(row []string, cols map[string]int, idx int) entity.Product {
	cell := func(field string) string {
		j := cols[field]
		if j < 0 || j >= len(row) {
			return ""
		}
		return row[j]
	}

	id := sanitize.Text(cell(fieldID))
	if id == "" {
		id = fmt.Sprintf("product-%d", idx)
	}
	unit := sanitize.Text(cell(fieldUnit))
	if unit == "" {
		unit = entity.DefaultUnit
	}
	category := sanitize.Text(cell(fieldCategory))
	if category == "" {
		category = entity.DefaultCategory
	}

	return entity.Product{
		ID:          id,
		Name:        sanitize.Text(cell(fieldName)),
		Description: sanitize.Text(cell(fieldDescription)),
		Price:       sanitize.Amount(cell(fieldPrice)),
		Unit:        unit,
		Category:    category,
	}
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if sanitize.Text(v) != "" {
			return false
		}
	}
	return true
}
