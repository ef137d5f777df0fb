package models

// Menu groups catalog items, e.g. Breakfast or Drinks.
type Menu struct {
	BaseModel
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Items []Item `json:"Items"`
}

// Item is a purchasable dish or drink.
type Item struct {
	BaseModel
	MenuID      uint    `gorm:"index" json:"menuId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `gorm:"type:numeric(12,2)" json:"cost"`
	Size        string  `json:"size"`
	Image       string  `json:"image"`
}
