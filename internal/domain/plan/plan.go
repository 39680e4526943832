package plan

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

var ErrUnknownPlan = errors.New("unknown plan")

// Plan is a purchasable tag bundle. Prices are fixed in the catalog, never
// taken from the client.
type Plan struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	TagCount int
}

var catalog = map[string]Plan{
	"single": {
		ID:       "single",
		Name:     "Single Trophy Tag",
		Price:    decimal.NewFromFloat(29.99),
		TagCount: 1,
	},
	"three-pack": {
		ID:       "three-pack",
		Name:     "Three Tag Pack",
		Price:    decimal.NewFromFloat(74.99),
		TagCount: 3,
	},
	"five-pack": {
		ID:       "five-pack",
		Name:     "Five Tag Pack",
		Price:    decimal.NewFromFloat(109.99),
		TagCount: 5,
	},
}

func ByID(id string) (Plan, error) {
	p, ok := catalog[id]
	if !ok {
		return Plan{}, ErrUnknownPlan
	}
	return p, nil
}

// IDs lists the purchasable plan ids in a stable order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
