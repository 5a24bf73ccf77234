package analytics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aayush-oza/fintrack-server/cmd/models"
	"github.com/aayush-oza/fintrack-server/cmd/utils"
	"github.com/aayush-oza/fintrack-server/service/transactions"
	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var routeTestSecret = []byte("route-test-secret")

func TestGetAnalyticsOverHTTP(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Transaction{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store := transactions.NewStore(db)
	auth := utils.RequireAuth(utils.BearerResolver{Secret: routeTestSecret})

	router := mux.NewRouter()
	NewAnalyticsHandler(store).RegisterRoutes(router.PathPrefix("/api").Subrouter(), auth)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	for _, in := range []transactions.Input{
		{Amount: cents(5000), Type: models.TypeDebit, Category: "food", Mode: models.ModeCash, Date: "2024-01-01"},
		{Amount: cents(10000), Type: models.TypeCredit, Category: "salary", Mode: models.ModeOnline, Date: "2024-01-02"},
	} {
		if _, err := store.Create(1, in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	claims := &jwt.RegisteredClaims{
		Subject:   fmt.Sprint(1),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(routeTestSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/analytics", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get analytics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Modes      map[string]float64 `json:"modes"`
		Types      map[string]float64 `json:"types"`
		Categories map[string]float64 `json:"categories"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if body.Categories["food"] != 50.00 || len(body.Categories) != 1 {
		t.Fatalf("categories = %v, want only food:50", body.Categories)
	}
	if body.Types["debit"] != 50.00 || body.Types["credit"] != 100.00 {
		t.Fatalf("types = %v", body.Types)
	}
	if body.Modes["cash"] != 50.00 || body.Modes["online"] != 100.00 {
		t.Fatalf("modes = %v", body.Modes)
	}
}

func cents(v models.Money) *models.Money {
	return &v
}
