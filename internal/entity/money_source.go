package entity

type MoneySource struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Name     string
	Balance  float64 `gorm:"default:0"`
	Currency string  `gorm:"default:VND"`
	Color    string  `gorm:"default:#3b82f6"`
}
