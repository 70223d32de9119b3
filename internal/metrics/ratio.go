package metrics

import (
	"encoding/json"
	"math"
	"strconv"
)

// Ratio is a quotient metric that keeps "undefined" (zero denominator)
// distinct from a computed zero. An undefined ratio encodes to JSON as
// null so report consumers can never read it as 0.
type Ratio struct {
	Value   float64
	Defined bool
}

func DefinedRatio(value float64) Ratio {
	return Ratio{Value: value, Defined: true}
}

func UndefinedRatio() Ratio {
	return Ratio{}
}

// PercentOf returns numerator/denominator*100 rounded to 2 decimals, or an
// undefined ratio when the denominator is zero.
func PercentOf(numerator, denominator float64) Ratio {
	if denominator == 0 {
		return UndefinedRatio()
	}
	return DefinedRatio(Round2(numerator / denominator * 100))
}

// MeanOf returns the arithmetic mean rounded to 2 decimals, or an undefined
// ratio for an empty input.
func MeanOf(values []float64) Ratio {
	if len(values) == 0 {
		return UndefinedRatio()
	}
	var sum float64
	for _, value := range values {
		sum += value
	}
	return DefinedRatio(Round2(sum / float64(len(values))))
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(r.Value, 'f', -1, 64)), nil
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = UndefinedRatio()
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*r = DefinedRatio(value)
	return nil
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
