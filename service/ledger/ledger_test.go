package ledger

import (
	"testing"
	"time"

	"github.com/aayush-oza/fintrack-server/cmd/models"
)

func txn(date string, typ string, cents models.Money) models.Transaction {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Amount:   cents,
		Type:     typ,
		Category: "test",
		Mode:     models.ModeCash,
		Date:     d,
	}
}

func TestRunningBalanceSequence(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-01-01", models.TypeCredit, 10000),
		txn("2024-01-02", models.TypeDebit, 4000),
		txn("2024-01-03", models.TypeCredit, 1000),
	}

	want := []models.Money{10000, 6000, 7000}
	var got []models.Money
	for _, balance := range Running(txns) {
		got = append(got, balance)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d balances, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("balance[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if b := Balance(txns); b != 7000 {
		t.Fatalf("Balance = %s, want 70.00", b)
	}
}

func TestBalanceMatchesLastRunning(t *testing.T) {
	txns := []models.Transaction{
		txn("2023-11-05", models.TypeDebit, 199),
		txn("2023-11-06", models.TypeCredit, 50000),
		txn("2023-11-06", models.TypeDebit, 1250),
		txn("2023-12-01", models.TypeDebit, 333),
		txn("2024-01-15", models.TypeCredit, 75),
	}

	var last models.Money
	var steps int
	for _, balance := range Running(txns) {
		last = balance
		steps++
	}

	if steps != len(txns) {
		t.Fatalf("running yielded %d steps, want %d", steps, len(txns))
	}
	if got := Balance(txns); got != last {
		t.Fatalf("Balance = %s but final running balance = %s", got, last)
	}
}

func TestEmptySet(t *testing.T) {
	if b := Balance(nil); b != 0 {
		t.Fatalf("Balance(nil) = %s, want 0.00", b)
	}
	for range Running(nil) {
		t.Fatal("Running(nil) yielded a value")
	}
}

func TestRunningIsRestartable(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-01-01", models.TypeCredit, 500),
		txn("2024-01-02", models.TypeDebit, 200),
	}
	seq := Running(txns)

	// Break out early, then iterate again from the start.
	for _, balance := range seq {
		if balance != 500 {
			t.Fatalf("first balance = %s, want 5.00", balance)
		}
		break
	}

	var got []models.Money
	for _, balance := range seq {
		got = append(got, balance)
	}
	if len(got) != 2 || got[0] != 500 || got[1] != 300 {
		t.Fatalf("second iteration got %v, want [500 300]", got)
	}
}

func TestBalanceCanGoNegative(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-02-01", models.TypeDebit, 2500),
	}
	if b := Balance(txns); b != -2500 {
		t.Fatalf("Balance = %s, want -25.00", b)
	}
}
