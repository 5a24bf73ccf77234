package models

import (
	"time"

	"gorm.io/gorm"
)

// Person-ledger entry kinds: "given" means the holder lent money out,
// "taken" means the holder borrowed it.
const (
	EntryGiven = "given"
	EntryTaken = "taken"
)

// PersonEntry records money lent to or borrowed from a named person,
// outside the main transaction log.
type PersonEntry struct {
	gorm.Model
	UserID      uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	PersonName  string    `gorm:"column:person_name;size:100;not null" json:"person_name"`
	Amount      Money     `gorm:"column:amount;not null" json:"amount"`
	Type        string    `gorm:"column:type;size:20;not null" json:"type"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Date        time.Time `gorm:"column:date;type:date;not null" json:"date"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// ValidEntryType reports whether t is one of the person-ledger entry kinds.
func ValidEntryType(t string) bool {
	return t == EntryGiven || t == EntryTaken
}
