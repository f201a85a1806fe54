// Package discount holds the static voucher table and the featured meal
// deals, and applies them to a cart.
package discount

import (
	"strings"

	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/cart"
	"github.com/iStefan20/YumTum/internal/catalog"
	"github.com/iStefan20/YumTum/internal/domain"
	"github.com/iStefan20/YumTum/pkg/errors"
)

// definitions is the voucher table. Codes are matched exactly, uppercase.
var definitions = []domain.DiscountDefinition{
	{Code: "SAVE10", Fraction: 0.10, Label: "10% Off"},
	{Code: "SAVE15", Fraction: 0.15, Label: "15% Off"},
	{Code: "SAVE20", Fraction: 0.20, Label: "20% Off"},
}

// mealDeals are complete meals sold with a deal discount. Dish ids refer
// to the static catalog.
var mealDeals = []domain.MealDeal{
	{ID: "1", Name: "Balkan Combo", Description: "Mici + Pork Steak + Mustard + Palincă", Discount: 0.15, DishIDs: []string{"3", "7", "100", "14"}},
	{ID: "3", Name: "American Favorites", Description: "Burger + BBQ Ribs + Apple Pie + Milkshake", Discount: 0.10, DishIDs: []string{"85", "86", "91", "98"}},
	{ID: "4", Name: "Balkan Feast", Description: "Ciorbă de perișoare + Tochitură + Baklava", Discount: 0.15, DishIDs: []string{"6", "2", "41", "16"}},
	{ID: "5", Name: "Mediterranean Trio", Description: "Tzatziki + Spaghetti allo Scoglio + Galaktoboureko", Discount: 0.10, DishIDs: []string{"44", "26", "42", "16"}},
	{ID: "6", Name: "Asian Explorer", Description: "Dumplings + Tonkatsu + Mochi", Discount: 0.20, DishIDs: []string{"51", "74", "76", "81"}},
	{ID: "7", Name: "Latin Fiesta", Description: "Guacamole + Tacos + Tres Leches", Discount: 0.15, DishIDs: []string{"57", "63", "68"}},
	{ID: "11", Name: "Street Food Sampler", Description: "Tacos + Souvlaki + Okonomiyaki + Churros", Discount: 0.20, DishIDs: []string{"57", "38", "75", "63", "83"}},
	{ID: "12", Name: "Quick Lunch: Gyros Combo", Description: "Gyros + Fries + Orange Juice", Discount: 0.20, DishIDs: []string{"39", "101", "106"}},
}

// Service resolves voucher codes and meal deals and applies them to carts
type Service struct {
	catalog *catalog.Catalog
	byCode  map[string]domain.DiscountDefinition
	deals   map[string]domain.MealDeal
	logger  *zap.Logger
}

// NewService creates a new discount service
func NewService(cat *catalog.Catalog, logger *zap.Logger) *Service {
	s := &Service{
		catalog: cat,
		byCode:  make(map[string]domain.DiscountDefinition, len(definitions)),
		deals:   make(map[string]domain.MealDeal, len(mealDeals)),
		logger:  logger,
	}
	for _, d := range definitions {
		s.byCode[d.Code] = d
	}
	for _, m := range mealDeals {
		s.deals[m.ID] = m
	}
	return s
}

// Definitions returns the voucher table in display order
func (s *Service) Definitions() []domain.DiscountDefinition {
	out := make([]domain.DiscountDefinition, len(definitions))
	copy(out, definitions)
	return out
}

// Deals returns the featured meal deals in display order
func (s *Service) Deals() []domain.MealDeal {
	out := make([]domain.MealDeal, len(mealDeals))
	copy(out, mealDeals)
	return out
}

// Lookup resolves a voucher code. Codes are exact-match uppercase strings;
// the code is upper-cased before lookup so user input survives lowercase.
func (s *Service) Lookup(code string) (domain.DiscountDefinition, error) {
	def, ok := s.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return domain.DiscountDefinition{}, &errors.ErrUnknownDiscount{Code: code}
	}
	return def, nil
}

// ApplyCode applies the voucher to the cart. An unknown code leaves the
// cart's discount state unchanged.
func (s *Service) ApplyCode(store *cart.Store, code string) (domain.DiscountDefinition, error) {
	def, err := s.Lookup(code)
	if err != nil {
		return domain.DiscountDefinition{}, err
	}
	store.ApplyDiscount(def.Fraction, def.Label)
	s.logger.Info("Discount applied", zap.String("code", def.Code), zap.Float64("fraction", def.Fraction))
	return def, nil
}

// ApplyDeal adds every resolvable dish of the deal to the cart, then
// applies the deal's discount. Dish ids missing from the catalog are
// skipped; the deal still applies.
func (s *Service) ApplyDeal(store *cart.Store, dealID string) (domain.MealDeal, error) {
	deal, ok := s.deals[dealID]
	if !ok {
		return domain.MealDeal{}, &errors.ErrNotFound{Resource: "meal deal", ID: dealID}
	}
	for _, dishID := range deal.DishIDs {
		dish, err := s.catalog.ByID(dishID)
		if err != nil {
			s.logger.Warn("Meal deal references unknown dish", zap.String("deal_id", deal.ID), zap.String("dish_id", dishID))
			continue
		}
		store.AddItem(dish)
	}
	store.ApplyDiscount(deal.Discount, deal.Name)
	return deal, nil
}
