package entity

import (
	"time"

	"github.com/hieuduy1751/paio/pkg/enum"
)

type ExpenseType string

var (
	Debit  = enum.New(ExpenseType("debit"))
	Credit = enum.New(ExpenseType("credit"))
)

type Expense struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	MoneySourceID string      `gorm:"index"`
	MoneySource   MoneySource `gorm:"foreignKey:MoneySourceID"`

	Type            ExpenseType
	Amount          float64
	Category        string
	Description     string
	TransactionDate time.Time `gorm:"index"`
}
