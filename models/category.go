package models

// Category is a shared classification entity. It belongs to one user but is
// referenced (not owned) by allocations and expenses, so its delete rule is
// RESTRICT: removing a category that still classifies financial records
// would silently orphan them.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:512;not null;default:''"`

	Allocations []Allocation `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Expenses    []Expense    `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}
