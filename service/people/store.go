package people

import (
	"errors"
	"time"

	"github.com/aayush-oza/fintrack-server/cmd/models"
	"github.com/aayush-oza/fintrack-server/cmd/utils"
	"gorm.io/gorm"
)

// Input is the wire payload for person-ledger entries. Description is the
// only optional field.
type Input struct {
	PersonName  string        `json:"person_name"`
	Amount      *models.Money `json:"amount"`
	Type        string        `json:"type"`
	Date        string        `json:"date"`
	Description string        `json:"description"`
}

func (in Input) validate() (time.Time, error) {
	if in.Amount == nil {
		return time.Time{}, utils.Invalid("amount is required")
	}
	if in.PersonName == "" || in.Type == "" || in.Date == "" {
		return time.Time{}, utils.Invalid("missing required fields")
	}
	if !models.ValidEntryType(in.Type) {
		return time.Time{}, utils.Invalid("type must be given or taken")
	}
	date, err := time.Parse(models.DateLayout, in.Date)
	if err != nil {
		return time.Time{}, utils.Invalid("date must be YYYY-MM-DD")
	}
	return date, nil
}

// Store owns reads and writes of a user's person-ledger entries, with the
// same owner-scoping rules as the transaction store.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(owner uint, in Input) (models.PersonEntry, error) {
	date, err := in.validate()
	if err != nil {
		return models.PersonEntry{}, err
	}

	entry := models.PersonEntry{
		UserID:      owner,
		PersonName:  in.PersonName,
		Amount:      *in.Amount,
		Type:        in.Type,
		Description: in.Description,
		Date:        date,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return models.PersonEntry{}, err
	}
	return entry, nil
}

func (s *Store) List(owner uint) ([]models.PersonEntry, error) {
	var entries []models.PersonEntry
	err := s.db.Where("user_id = ?", owner).Order("date DESC, id DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) Update(owner, id uint, in Input) (models.PersonEntry, error) {
	date, err := in.validate()
	if err != nil {
		return models.PersonEntry{}, err
	}

	var entry models.PersonEntry
	result := s.db.Where("id = ? AND user_id = ?", id, owner).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.PersonEntry{}, utils.ErrNotFound
		}
		return models.PersonEntry{}, result.Error
	}

	entry.PersonName = in.PersonName
	entry.Amount = *in.Amount
	entry.Type = in.Type
	entry.Description = in.Description
	entry.Date = date

	if err := s.db.Save(&entry).Error; err != nil {
		return models.PersonEntry{}, err
	}
	return entry, nil
}

func (s *Store) Delete(owner, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, owner).Delete(&models.PersonEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// Summarize nets each person's entries: money given out counts toward the
// holder, money taken counts against. A positive net means the person owes
// the holder.
func Summarize(entries []models.PersonEntry) map[string]models.Money {
	summary := make(map[string]models.Money)
	for _, e := range entries {
		if e.Type == models.EntryGiven {
			summary[e.PersonName] += e.Amount
		} else {
			summary[e.PersonName] -= e.Amount
		}
	}
	return summary
}
