package model

// Product represents a single catalog item. Price and Stock are nullable so
// a PATCH body can distinguish "not supplied" from a zero value.
type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       *float64  `gorm:"type:decimal(10,2)" json:"price"`
	Stock       *int64    `gorm:"type:bigint" json:"stock"`
	CategoryID  *uint     `gorm:"index" json:"-"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}
