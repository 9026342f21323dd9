// SPDX-License-Identifier: MIT
package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field names of a Record, as they appear in JSON.
const (
	FieldEquation = "equation"
	FieldXL       = "xl"
	FieldXR       = "xr"
	FieldX        = "x"
	FieldN        = "n"
	FieldM        = "m"
	FieldA        = "a"
	FieldB        = "b"
	FieldXIn      = "xin"
)

// Record is one exercise instance. A holds a JSON matrix (or the xs of a data
// set) and B a JSON vector (or the ys).
type Record struct {
	No       int    `json:"no"`
	Equation string `json:"equation"`
	XL       string `json:"xl"`
	XR       string `json:"xr"`
	X        string `json:"x"`
	N        string `json:"n"`
	M        string `json:"m"`
	A        string `json:"a"`
	B        string `json:"b"`
	XIn      string `json:"xin"`
}

// Field returns the raw text of the named field.
func (r Record) Field(name string) (string, error) {
	switch name {
	case FieldEquation:
		return r.Equation, nil
	case FieldXL:
		return r.XL, nil
	case FieldXR:
		return r.XR, nil
	case FieldX:
		return r.X, nil
	case FieldN:
		return r.N, nil
	case FieldM:
		return r.M, nil
	case FieldA:
		return r.A, nil
	case FieldB:
		return r.B, nil
	case FieldXIn:
		return r.XIn, nil
	}

	return "", fmt.Errorf("Field %q: %w", name, ErrUnknownField)
}

// text returns the trimmed field value or ErrEmptyField.
func (r Record) text(name string) (string, error) {
	s, err := r.Field(name)
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%q: %w", name, ErrEmptyField)
	}

	return s, nil
}

// Float parses the named field as a finite float64.
func (r Record) Float(name string) (float64, error) {
	s, err := r.text(name)
	if err != nil {
		return 0, storeErrorf("Float", err)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, storeErrorf("Float", fmt.Errorf("%q=%q: %w", name, s, ErrBadField))
	}

	return v, nil
}

// Int parses the named field as a base-10 integer.
func (r Record) Int(name string) (int, error) {
	s, err := r.text(name)
	if err != nil {
		return 0, storeErrorf("Int", err)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, storeErrorf("Int", fmt.Errorf("%q=%q: %w", name, s, ErrBadField))
	}

	return v, nil
}

// Floats parses the named field as a JSON array of numbers.
func (r Record) Floats(name string) ([]float64, error) {
	s, err := r.text(name)
	if err != nil {
		return nil, storeErrorf("Floats", err)
	}
	var v []float64
	if err = json.Unmarshal([]byte(s), &v); err != nil {
		return nil, storeErrorf("Floats", fmt.Errorf("%q: %w: %w", name, ErrBadField, err))
	}

	return v, nil
}

// Matrix parses A as a JSON array of rows. Shape checks are left to the solver.
func (r Record) Matrix() ([][]float64, error) {
	s, err := r.text(FieldA)
	if err != nil {
		return nil, storeErrorf("Matrix", err)
	}
	var v [][]float64
	if err = json.Unmarshal([]byte(s), &v); err != nil {
		return nil, storeErrorf("Matrix", fmt.Errorf("%w: %w", ErrBadField, err))
	}

	return v, nil
}

// Vector parses B as a JSON array of numbers.
func (r Record) Vector() ([]float64, error) {
	v, err := r.Floats(FieldB)
	if err != nil {
		return nil, storeErrorf("Vector", err)
	}

	return v, nil
}

// FormatFloats encodes v the way Vector and Floats read it back.
func FormatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// FormatMatrix encodes rows the way Matrix reads them back.
func FormatMatrix(rows [][]float64) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = FormatFloats(row)
	}

	return "[" + strings.Join(parts, ",") + "]"
}
