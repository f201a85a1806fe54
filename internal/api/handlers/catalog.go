package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/catalog"
)

// HandleListCountries handles GET /v1/catalog/countries
func HandleListCountries(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"countries": cat.Countries()})
	}
}

// HandleListDishes handles GET /v1/catalog/dishes
// Optional filters: ?country= narrows to one country, ?q= searches by name.
func HandleListDishes(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		if q := c.Query("q"); q != "" {
			c.JSON(http.StatusOK, gin.H{"dishes": cat.Search(q)})
			return
		}
		if country := c.Query("country"); country != "" {
			c.JSON(http.StatusOK, gin.H{"dishes": cat.ByCountry(country)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"dishes": cat.All()})
	}
}

// HandleGetDish handles GET /v1/catalog/dishes/:id
func HandleGetDish(cat *catalog.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		dish, err := cat.ByID(c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, dish)
	}
}
