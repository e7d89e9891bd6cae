package domain

import (
	"fmt"
	"strings"
)

// Category classifies an expense.
type Category string

// Expense categories, in canonical display order.
const (
	CategoryFood      Category = "Food"
	CategoryHousing   Category = "Housing"
	CategoryTransport Category = "Transport"
	CategoryOther     Category = "Other"
)

var categories = []Category{
	CategoryFood,
	CategoryHousing,
	CategoryTransport,
	CategoryOther,
}

// Categories returns every known category in canonical order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a category name, ignoring case and surrounding spaces.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c.index() >= 0
}

func (c Category) String() string {
	return string(c)
}

func (c Category) index() int {
	for i, known := range categories {
		if c == known {
			return i
		}
	}
	return -1
}
