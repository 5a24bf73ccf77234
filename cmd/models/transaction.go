package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction type and payment mode enums. Amounts are stored as a
// positive magnitude; debit subtracts from the ledger, credit adds.
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"

	ModeCash   = "cash"
	ModeOnline = "online"
)

// DateLayout is the calendar-date format used on the wire and in exports.
const DateLayout = "2006-01-02"

type Transaction struct {
	gorm.Model
	UserID      uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Amount      Money     `gorm:"column:amount;not null" json:"amount"`
	Type        string    `gorm:"column:type;size:10;not null" json:"type"`
	Category    string    `gorm:"column:category;size:100;not null" json:"category"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Mode        string    `gorm:"column:mode;size:10;not null" json:"mode"`
	Date        time.Time `gorm:"column:date;type:date;not null" json:"date"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// ValidType reports whether t is one of the transaction type enums.
func ValidType(t string) bool {
	return t == TypeDebit || t == TypeCredit
}

// ValidMode reports whether m is one of the payment mode enums.
func ValidMode(m string) bool {
	return m == ModeCash || m == ModeOnline
}
