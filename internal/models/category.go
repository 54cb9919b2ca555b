package models

// Category groups products. Names are unique and compared case-sensitively.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:50;not null;uniqueIndex"`
}
