// Package calcs is a registry of the calculators this tool can target.
package calcs

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jszwec/csvutil"
)

// Model describes one supported calculator.
type Model struct {
	Name string `csv:"name"`
	Slug string `csv:"slug"`

	// Signature is the eight-byte device signature at the start of a
	// variable file header. Models with compatible link formats share one:
	// the TI-92 Plus and Voyage 200 both use "**TI92P*".
	Signature string `csv:"signature"`

	// Extension is the output file extension, without the dot.
	Extension          string `csv:"extension"`
	FirstYearAvailable uint   `csv:"first_year_available"`
	Notes              string `csv:"notes"`
}

var ErrUnknownModel = errors.New("no predefined calculator model")

//go:embed calc-models.csv
var calcModelsRawCSV string
var calcModels map[string]Model

// GetPredefinedModel returns the calculator registered under the given slug.
func GetPredefinedModel(slug string) (Model, error) {
	model, ok := calcModels[slug]
	if ok {
		return model, nil
	}
	return Model{}, fmt.Errorf("%w: %q", ErrUnknownModel, slug)
}

// Models returns all registered calculators, ordered by slug.
func Models() []Model {
	all := make([]Model, 0, len(calcModels))
	for _, model := range calcModels {
		all = append(all, model)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Slug < all[j].Slug })
	return all
}

func init() {
	reader := strings.NewReader(calcModelsRawCSV)
	csvReader := csv.NewReader(reader)
	csvReader.Comma = '|'

	decoder, err := csvutil.NewDecoder(csvReader)
	if err != nil {
		panic(fmt.Errorf("failed to create CSV decoder: %w", err))
	}

	calcModels = make(map[string]Model)

	for {
		var row Model
		if err = decoder.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			panic(fmt.Errorf("failed to decode row %d: %w", len(calcModels)+1, err))
		}

		_, exists := calcModels[row.Slug]
		if exists {
			panic(fmt.Errorf(
				"duplicate definition for calculator %q found on row %d",
				row.Slug,
				len(calcModels)+1))
		}
		calcModels[row.Slug] = row
	}
}
