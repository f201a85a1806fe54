package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iStefan20/YumTum/internal/domain"
	"github.com/iStefan20/YumTum/pkg/errors"
)

func TestCatalog_UniqueIDsAndParseablePrices(t *testing.T) {
	c := New()

	seen := make(map[string]bool)
	for _, d := range c.All() {
		assert.False(t, seen[d.ID], "duplicate dish id %s", d.ID)
		seen[d.ID] = true

		price, err := domain.ParsePrice(d.Price)
		require.NoError(t, err, "dish %s price %q", d.ID, d.Price)
		assert.GreaterOrEqual(t, price, 0.0)
	}
}

func TestCatalog_ByID(t *testing.T) {
	c := New()

	d, err := c.ByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Mici", d.Name)

	_, err = c.ByID("no-such-dish")
	var notFoundErr *errors.ErrNotFound
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestCatalog_Countries(t *testing.T) {
	c := New()
	countries := c.Countries()

	assert.Contains(t, countries, "Romania")
	assert.Contains(t, countries, "Japan")
	// Sorted, distinct
	for i := 1; i < len(countries); i++ {
		assert.Less(t, countries[i-1], countries[i])
	}
}

func TestCatalog_ByCountry(t *testing.T) {
	c := New()

	for _, d := range c.ByCountry("Greece") {
		assert.Equal(t, "Greece", d.Country)
	}
	assert.NotEmpty(t, c.ByCountry("greece"), "country filter is case-insensitive")
	assert.Empty(t, c.ByCountry("Atlantis"))
}

func TestCatalog_Search(t *testing.T) {
	c := New()

	results := c.Search("pasta")
	assert.NotEmpty(t, results)
	for _, d := range results {
		assert.Contains(t, d.Name, "Pasta")
	}

	assert.Empty(t, c.Search(""))
	assert.Empty(t, c.Search("zzzz"))
}
