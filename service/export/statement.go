package export

import (
	"fmt"
	"time"

	"github.com/aayush-oza/fintrack-server/cmd/models"
	"github.com/aayush-oza/fintrack-server/service/ledger"
)

// Row is one printed ledger line. Exactly one of Debit and Credit is
// populated, matching the transaction's type; the other stays blank.
type Row struct {
	Date        string
	Particulars string
	Debit       string
	Credit      string
	Balance     string
}

// Statement is the fully computed ledger document, ready to render.
type Statement struct {
	HolderName     string
	GeneratedAt    time.Time
	Rows           []Row
	ClosingBalance models.Money
}

// BuildStatement computes the printable ledger for a user. Transactions
// must be in ascending date order; the running balances come straight from
// the ledger engine so the export can never drift from the on-screen
// balance.
func BuildStatement(user models.User, txns []models.Transaction) Statement {
	st := Statement{
		HolderName:  user.Name,
		GeneratedAt: time.Now(),
		Rows:        make([]Row, 0, len(txns)),
	}

	for t, balance := range ledger.Running(txns) {
		row := Row{
			Date:        t.Date.Format(models.DateLayout),
			Particulars: particulars(t),
			Balance:     balance.String(),
		}
		if t.Type == models.TypeDebit {
			row.Debit = t.Amount.String()
		} else {
			row.Credit = t.Amount.String()
		}
		st.Rows = append(st.Rows, row)
		st.ClosingBalance = balance
	}

	return st
}

func particulars(t models.Transaction) string {
	if t.Description != "" {
		return fmt.Sprintf("%s (%s)", t.Category, t.Description)
	}
	return t.Category
}
