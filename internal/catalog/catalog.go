// Package catalog holds the static, read-only menu the rest of the
// service reads from. Dishes are plain values; the catalog never changes
// after construction.
package catalog

import (
	"sort"
	"strings"

	"github.com/iStefan20/YumTum/internal/domain"
	"github.com/iStefan20/YumTum/pkg/errors"
)

// Catalog is the read-only dish collection
type Catalog struct {
	dishes []domain.Dish
	byID   map[string]domain.Dish
}

// New builds the catalog from the static menu data
func New() *Catalog {
	return newFromDishes(dishSeed)
}

func newFromDishes(dishes []domain.Dish) *Catalog {
	c := &Catalog{
		dishes: make([]domain.Dish, len(dishes)),
		byID:   make(map[string]domain.Dish, len(dishes)),
	}
	copy(c.dishes, dishes)
	for _, d := range c.dishes {
		c.byID[d.ID] = d
	}
	return c
}

// ByID returns the dish with the given id
func (c *Catalog) ByID(id string) (domain.Dish, error) {
	d, ok := c.byID[id]
	if !ok {
		return domain.Dish{}, &errors.ErrNotFound{Resource: "dish", ID: id}
	}
	return d, nil
}

// All returns every dish in menu order
func (c *Catalog) All() []domain.Dish {
	out := make([]domain.Dish, len(c.dishes))
	copy(out, c.dishes)
	return out
}

// Countries returns the distinct countries on the menu, sorted
func (c *Catalog) Countries() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, d := range c.dishes {
		if _, ok := seen[d.Country]; !ok {
			seen[d.Country] = struct{}{}
			out = append(out, d.Country)
		}
	}
	sort.Strings(out)
	return out
}

// ByCountry returns the dishes for one country in menu order
func (c *Catalog) ByCountry(country string) []domain.Dish {
	var out []domain.Dish
	for _, d := range c.dishes {
		if strings.EqualFold(d.Country, country) {
			out = append(out, d)
		}
	}
	return out
}

// Search returns dishes whose name contains the query, case-insensitive.
// An empty query matches nothing.
func (c *Catalog) Search(query string) []domain.Dish {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []domain.Dish
	for _, d := range c.dishes {
		if strings.Contains(strings.ToLower(d.Name), q) {
			out = append(out, d)
		}
	}
	return out
}
