// Package validation holds the field rules shared by the web form and JSON
// handlers. Check is a pure function over already-parsed input, so neither
// interface needs to agree on a request-parsing mechanism.
package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mvolkov/inventory_app/internal/models"
)

const (
	MaxNameLength = 120
	MinQuantity   = 1
	MinPrice      = 0.10
)

// FieldErrors maps a field name to its error messages.
type FieldErrors map[string][]string

// Input is raw field data. Quantity and Price are nil when the field was not
// supplied at all.
type Input struct {
	Name        string
	Description string
	Quantity    *int
	Price       *float64
}

// Fields is a validated field set, ready for a store mutation.
type Fields struct {
	Name        string
	Description string
	Quantity    int
	Price       float64
}

// Check validates in and returns either the normalized field set or the
// per-field error messages.
func Check(in Input) (Fields, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs["name"] = append(errs["name"], "Name is required.")
	} else if utf8.RuneCountInString(name) > MaxNameLength {
		errs["name"] = append(errs["name"], "Name must be between 1 and 120 characters.")
	}

	if in.Quantity == nil {
		errs["quantity"] = append(errs["quantity"], "Quantity is required.")
	} else if *in.Quantity < MinQuantity {
		errs["quantity"] = append(errs["quantity"], "Quantity must be at least 1.")
	}

	if in.Price == nil {
		errs["price"] = append(errs["price"], "Price is required.")
	} else if *in.Price < MinPrice {
		errs["price"] = append(errs["price"], "Price must be at least $0.10.")
	}

	if len(errs) > 0 {
		return Fields{}, errs
	}

	fields := Fields{
		Name:        name,
		Description: in.Description,
		Quantity:    *in.Quantity,
		Price:       *in.Price,
	}
	return fields, nil
}

// Item builds an unsaved item from the validated fields.
func (f Fields) Item() models.Item {
	return models.Item{
		Name:        f.Name,
		Description: f.Description,
		Quantity:    f.Quantity,
		Price:       f.Price,
	}
}

// FromForm converts raw form strings into an Input. Blank or unparsable
// numeric fields count as missing.
func FromForm(name, description, quantity, price string) Input {
	in := Input{
		Name:        name,
		Description: description,
	}
	if q, err := strconv.Atoi(strings.TrimSpace(quantity)); err == nil {
		in.Quantity = &q
	}
	if p, err := strconv.ParseFloat(strings.TrimSpace(price), 64); err == nil {
		in.Price = &p
	}
	return in
}
