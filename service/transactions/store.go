package transactions

import (
	"errors"
	"time"

	"github.com/aayush-oza/fintrack-server/cmd/models"
	"github.com/aayush-oza/fintrack-server/cmd/utils"
	"gorm.io/gorm"
)

// Order selects how List sorts a user's transactions. Display wants the
// most recent first; the ledger and the export need ascending date order.
type Order string

const (
	DateDesc Order = "date DESC, id DESC"
	DateAsc  Order = "date ASC, id ASC"
)

// Input is the wire payload for creating or editing a transaction. Every
// field except Description is required; an edit replaces all of them.
type Input struct {
	Amount      *models.Money `json:"amount"`
	Type        string        `json:"type"`
	Category    string        `json:"category"`
	Mode        string        `json:"mode"`
	Date        string        `json:"date"`
	Description string        `json:"description"`
}

func (in Input) validate() (time.Time, error) {
	if in.Amount == nil {
		return time.Time{}, utils.Invalid("amount is required")
	}
	if in.Type == "" || in.Category == "" || in.Mode == "" || in.Date == "" {
		return time.Time{}, utils.Invalid("missing required fields")
	}
	if !models.ValidType(in.Type) {
		return time.Time{}, utils.Invalid("type must be debit or credit")
	}
	if !models.ValidMode(in.Mode) {
		return time.Time{}, utils.Invalid("mode must be cash or online")
	}
	date, err := time.Parse(models.DateLayout, in.Date)
	if err != nil {
		return time.Time{}, utils.Invalid("date must be YYYY-MM-DD")
	}
	return date, nil
}

// Store owns all reads and writes of a user's transactions. Every method
// takes the owner identity explicitly; rows belonging to other users are
// indistinguishable from rows that do not exist.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(owner uint, in Input) (models.Transaction, error) {
	date, err := in.validate()
	if err != nil {
		return models.Transaction{}, err
	}

	txn := models.Transaction{
		UserID:      owner,
		Amount:      *in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Description: in.Description,
		Mode:        in.Mode,
		Date:        date,
	}
	if err := s.db.Create(&txn).Error; err != nil {
		return models.Transaction{}, err
	}
	return txn, nil
}

func (s *Store) List(owner uint, order Order) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := s.db.Where("user_id = ?", owner).Order(string(order)).Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

// Update replaces all mutable fields of the transaction identified by
// (id, owner). Validation runs before anything touches the row, so a bad
// request leaves the stored record unchanged.
func (s *Store) Update(owner, id uint, in Input) (models.Transaction, error) {
	date, err := in.validate()
	if err != nil {
		return models.Transaction{}, err
	}

	var txn models.Transaction
	result := s.db.Where("id = ? AND user_id = ?", id, owner).First(&txn)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.Transaction{}, utils.ErrNotFound
		}
		return models.Transaction{}, result.Error
	}

	txn.Amount = *in.Amount
	txn.Type = in.Type
	txn.Category = in.Category
	txn.Description = in.Description
	txn.Mode = in.Mode
	txn.Date = date

	if err := s.db.Save(&txn).Error; err != nil {
		return models.Transaction{}, err
	}
	return txn, nil
}

func (s *Store) Delete(owner, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, owner).Delete(&models.Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
