package ledger

import (
	"iter"

	"github.com/aayush-oza/fintrack-server/cmd/models"
)

// signed maps a transaction onto the ledger: credit adds, debit subtracts.
func signed(t models.Transaction) models.Money {
	if t.Type == models.TypeCredit {
		return t.Amount
	}
	return -t.Amount
}

// Balance returns the closing balance over a user's transactions. The
// empty set balances to zero.
func Balance(txns []models.Transaction) models.Money {
	var total models.Money
	for _, t := range txns {
		total += signed(t)
	}
	return total
}

// Running yields each transaction paired with the balance after applying
// it, starting from zero. Input must already be in ascending date order
// (ties broken by id) so the sequence is deterministic; the final balance
// yielded equals Balance over the same input. The sequence is recomputed
// on every iteration, never cached.
func Running(txns []models.Transaction) iter.Seq2[models.Transaction, models.Money] {
	return func(yield func(models.Transaction, models.Money) bool) {
		var balance models.Money
		for _, t := range txns {
			balance += signed(t)
			if !yield(t, balance) {
				return
			}
		}
	}
}
