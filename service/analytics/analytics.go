package analytics

import "github.com/aayush-oza/fintrack-server/cmd/models"

// Summary holds the three independent groupings over a user's
// transactions. Keys absent from the input never appear; the maps are
// initialized so an empty input serializes as {} rather than null.
type Summary struct {
	Modes      map[string]models.Money `json:"modes"`
	Types      map[string]models.Money `json:"types"`
	Categories map[string]models.Money `json:"categories"`
}

// Aggregate sums amounts by payment mode, by type, and by category. The
// category grouping counts debit transactions only: spending breakdowns
// must not be polluted by income categories.
func Aggregate(txns []models.Transaction) Summary {
	s := Summary{
		Modes:      make(map[string]models.Money),
		Types:      make(map[string]models.Money),
		Categories: make(map[string]models.Money),
	}
	for _, t := range txns {
		s.Modes[t.Mode] += t.Amount
		s.Types[t.Type] += t.Amount
		if t.Type == models.TypeDebit {
			s.Categories[t.Category] += t.Amount
		}
	}
	return s
}
