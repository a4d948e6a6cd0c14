// Package plans holds the static subscription plan catalog. Catalog changes
// must never corrupt historical records: lookups by a vanished key fail
// gracefully and callers render a placeholder name instead.
package plans

import "fmt"

type Plan struct {
	Key   string
	Name  string
	Price int // rupees
	Days  int
	Emoji string
}

// PriceLabel renders the price the way it appears on keyboards and receipts.
func (p Plan) PriceLabel() string {
	return fmt.Sprintf("₹%d", p.Price)
}

var catalog = []Plan{
	{Key: "plan1", Name: "1 Month", Price: 99, Days: 30, Emoji: "🟢"},
	{Key: "plan2", Name: "6 Months", Price: 399, Days: 180, Emoji: "🟡"},
	{Key: "plan3", Name: "1 Year", Price: 1999, Days: 365, Emoji: "🔥"},
	{Key: "plan4", Name: "Lifetime", Price: 2999, Days: 36500, Emoji: "💎"},
}

// All returns the catalog in display order.
func All() []Plan {
	out := make([]Plan, len(catalog))
	copy(out, catalog)
	return out
}

func ByKey(key string) (Plan, bool) {
	for _, p := range catalog {
		if p.Key == key {
			return p, true
		}
	}
	return Plan{}, false
}

// NameOrDash is for rendering records whose plan key may no longer exist.
func NameOrDash(key *string) string {
	if key == nil {
		return "—"
	}
	p, ok := ByKey(*key)
	if !ok {
		return "—"
	}
	return p.Name
}
