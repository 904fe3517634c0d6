package valueconv

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
)

// ErrNullValue is returned when a NULL column is scanned into a value object.
var ErrNullValue = errors.New("cannot convert NULL into a value object")

// MappingHints describes how the provider value should be stored.
type MappingHints struct {
	// DataType is the GORM data type reported for the wrapper ("string", "int", "time", ...).
	DataType string
	// Size is an optional column size hint. Zero means unbounded.
	Size int
}

// Converter translates between a value object V and the primitive P the database persists.
type Converter[V any, P any] struct {
	toProvider   func(V) P
	fromProvider func(P) V
	hints        MappingHints
}

// New creates a Converter from the write (toProvider) and read (fromProvider) expressions.
func New[V any, P any](toProvider func(V) P, fromProvider func(P) V, hints ...MappingHints) *Converter[V, P] {
	c := &Converter[V, P]{
		toProvider:   toProvider,
		fromProvider: fromProvider,
	}
	if len(hints) > 0 {
		c.hints = hints[0]
	}
	return c
}

// ToProvider extracts the primitive from the value object.
func (c *Converter[V, P]) ToProvider(v V) P {
	return c.toProvider(v)
}

// FromProvider rebuilds the value object from its primitive.
func (c *Converter[V, P]) FromProvider(p P) V {
	return c.fromProvider(p)
}

// Hints returns the mapping hints given at construction.
func (c *Converter[V, P]) Hints() MappingHints {
	return c.hints
}

// Value implements the write half of driver.Valuer for V.
func (c *Converter[V, P]) Value(v V) (driver.Value, error) {
	value, err := driver.DefaultParameterConverter.ConvertValue(c.toProvider(v))
	if err != nil {
		return nil, fmt.Errorf("failed to convert %T to a driver value: %w", v, err)
	}
	return value, nil
}

// Scan implements the read half of sql.Scanner for V.
func (c *Converter[V, P]) Scan(src any) (V, error) {
	var zero V

	var column sql.Null[P]
	if err := column.Scan(src); err != nil {
		return zero, fmt.Errorf("failed to scan %T into %T: %w", src, zero, err)
	}
	if !column.Valid {
		return zero, fmt.Errorf("%T: %w", zero, ErrNullValue)
	}

	return c.fromProvider(column.V), nil
}
