package analytics

import (
	"encoding/json"
	"testing"

	"github.com/aayush-oza/fintrack-server/cmd/models"
)

func TestAggregateDebitOnlyCategories(t *testing.T) {
	txns := []models.Transaction{
		{Amount: 5000, Type: models.TypeDebit, Category: "food", Mode: models.ModeCash},
		{Amount: 10000, Type: models.TypeCredit, Category: "salary", Mode: models.ModeOnline},
	}

	s := Aggregate(txns)

	if len(s.Categories) != 1 || s.Categories["food"] != 5000 {
		t.Fatalf("categories = %v, want only food:50.00", s.Categories)
	}
	if _, ok := s.Categories["salary"]; ok {
		t.Fatal("credit transaction leaked into the category breakdown")
	}
	if s.Types[models.TypeDebit] != 5000 || s.Types[models.TypeCredit] != 10000 {
		t.Fatalf("types = %v", s.Types)
	}
	if s.Modes[models.ModeCash] != 5000 || s.Modes[models.ModeOnline] != 10000 {
		t.Fatalf("modes = %v", s.Modes)
	}
}

func TestAggregateSumsPerKey(t *testing.T) {
	txns := []models.Transaction{
		{Amount: 100, Type: models.TypeDebit, Category: "food", Mode: models.ModeCash},
		{Amount: 250, Type: models.TypeDebit, Category: "food", Mode: models.ModeOnline},
		{Amount: 75, Type: models.TypeDebit, Category: "travel", Mode: models.ModeCash},
	}

	s := Aggregate(txns)

	if s.Categories["food"] != 350 {
		t.Fatalf("food = %s, want 3.50", s.Categories["food"])
	}
	if s.Categories["travel"] != 75 {
		t.Fatalf("travel = %s, want 0.75", s.Categories["travel"])
	}
	if s.Modes[models.ModeCash] != 175 {
		t.Fatalf("cash = %s, want 1.75", s.Modes[models.ModeCash])
	}
}

func TestAggregateEmptySerializesAsObjects(t *testing.T) {
	b, err := json.Marshal(Aggregate(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"modes":{},"types":{},"categories":{}}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}
