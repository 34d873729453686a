package manual

import (
	"fmt"
	"strings"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/arith"
)

// parseLine handles one recipe line:
//
//	rate product [coef ingredient]* time
func (m *Manual) parseLine(source string, line int, text string) error {
	fields := strings.Fields(text)
	if len(fields) < 3 || len(fields)%2 == 0 {
		return &FormatError{
			Source: source,
			Line:   line,
			Msg:    fmt.Sprintf("expected 'rate product [coef ingredient]... time', got %d fields", len(fields)),
		}
	}

	field := func(idx int, what string) (float64, error) {
		v, err := arith.Eval(fields[idx])
		if err != nil {
			return 0, &FormatError{Source: source, Line: line, Msg: "invalid " + what, Err: err}
		}
		return v, nil
	}

	rate, err := field(0, "rate")
	if err != nil {
		return err
	}
	if rate <= 0 {
		return &FormatError{Source: source, Line: line, Msg: fmt.Sprintf("rate must be positive, got %g", rate)}
	}

	batchTime, err := field(len(fields)-1, "time")
	if err != nil {
		return err
	}
	if batchTime < 0 {
		return &FormatError{Source: source, Line: line, Msg: fmt.Sprintf("time must not be negative, got %g", batchTime)}
	}

	// Coefficients are parsed before any name is interned so a bad line
	// leaves no stray resources behind.
	pairs := fields[2 : len(fields)-1]
	coefs := make([]float64, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		coef, err := field(2+i, "coefficient for "+pairs[i+1])
		if err != nil {
			return err
		}
		if coef < 0 {
			return &FormatError{Source: source, Line: line, Msg: fmt.Sprintf("coefficient for %s must not be negative, got %g", pairs[i+1], coef)}
		}
		coefs = append(coefs, coef)
	}

	rec := &Recipe{
		Source:  source,
		Line:    line,
		Product: m.Intern(fields[1]),
		Rate:    rate,
		Time:    batchTime / rate,
	}
	for i, coef := range coefs {
		rec.Ingredients = append(rec.Ingredients, Ingredient{
			Resource: m.Intern(pairs[2*i+1]),
			Coef:     coef / rate,
		})
	}
	m.AddRecipe(rec)
	return nil
}
