package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/repository"
)

const (
	PriceSortLowHigh = "low-high"
	PriceSortHighLow = "high-low"
)

// CatalogFilter narrows the in-stock catalog to a group-size
// recommendation. GroupSize is the primary filter; without it nothing
// is recommended.
type CatalogFilter struct {
	GroupSize   string  `json:"groupSize"`
	Category    string  `json:"category"`
	MaxCalories float64 `json:"maxCalories"`
	PriceSort   string  `json:"priceSort"`
}

// MatchesGroupSize reports whether an item tagged itemTag suits a
// buyer's selection. Smaller-group items also satisfy larger groups:
// "individual" matches every selection, "2-3" additionally matches
// "4-6", and so on. Untagged items match everything.
func MatchesGroupSize(itemTag, selection string) bool {
	if itemTag == "" {
		return true
	}

	item := strings.ToLower(strings.TrimSpace(itemTag))
	sel := strings.ToLower(strings.TrimSpace(selection))

	switch sel {
	case "individual":
		return item == "individual"
	case "2-3":
		return item == "2-3" || item == "individual"
	case "4-6":
		return item == "4-6" || item == "2-3" || item == "individual"
	}

	// custom numeric selection
	if n, err := strconv.Atoi(sel); err == nil && n > 0 {
		if m, err := strconv.Atoi(item); err == nil {
			return m >= n
		}
		if item == "individual" && n == 1 {
			return true
		}
		if item == "2-3" && n >= 2 && n <= 3 {
			return true
		}
		// anything above 6 gets the largest bucket
		if item == "4-6" && n >= 4 {
			return true
		}
	}
	return item == sel
}

// FilterFoodItems applies the group-size filter, then the category and
// calorie filters, then an optional stable price sort. Items without
// nutrition count as 0 calories and always pass the calorie ceiling.
// No group-size selection means no recommendation at all.
func FilterFoodItems(items []entity.FoodItem, f CatalogFilter) []entity.FoodItem {
	if strings.TrimSpace(f.GroupSize) == "" {
		return []entity.FoodItem{}
	}

	out := make([]entity.FoodItem, 0, len(items))
	for _, it := range items {
		if !MatchesGroupSize(it.GroupSize, f.GroupSize) {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.MaxCalories > 0 {
			calories := 0.0
			if it.Nutrition != nil {
				calories = it.Nutrition.Calories
			}
			if calories > f.MaxCalories {
				continue
			}
		}
		out = append(out, it)
	}

	switch f.PriceSort {
	case PriceSortLowHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case PriceSortHighLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// CatalogService serves the buyer-facing catalog: store browsing and
// the group-size recommendation feed.
type CatalogService struct {
	Stores *repository.StoreRepository
	Foods  *repository.FoodRepository
}

func NewCatalogService(stores *repository.StoreRepository, foods *repository.FoodRepository) *CatalogService {
	return &CatalogService{Stores: stores, Foods: foods}
}

func (s *CatalogService) ListStores(city string) ([]entity.Store, error) {
	return s.Stores.ListActive(city)
}

func (s *CatalogService) GetStore(id uint) (*entity.Store, error) {
	return s.Stores.GetByID(id)
}

func (s *CatalogService) StoreFoods(storeID uint) ([]entity.FoodItem, error) {
	return s.Foods.ListInStockForStore(storeID)
}

func (s *CatalogService) Cities() ([]string, error) {
	return s.Stores.Cities()
}

// Recommend runs the filter engine over the in-stock items of the
// currently visible stores (all active stores, or one city's).
func (s *CatalogService) Recommend(city string, f CatalogFilter) ([]entity.FoodItem, error) {
	stores, err := s.Stores.ListActive(city)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(stores))
	for _, st := range stores {
		ids = append(ids, st.ID)
	}
	items, err := s.Foods.ListInStockForStores(ids)
	if err != nil {
		return nil, err
	}
	return FilterFoodItems(items, f), nil
}
