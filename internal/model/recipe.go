package model

import (
	"time"
)

// Recipe is the persisted recipe record. IDs are 64-bit integers and are
// serialized as strings so they survive JSON numeric precision limits.
type Recipe struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id,string"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	Category        string    `gorm:"size:50" json:"category"`
	Author          string    `gorm:"size:100" json:"author"`
	ImageURL        string    `gorm:"size:255" json:"image_url"`
	Ingredients     string    `gorm:"type:text;not null" json:"ingredients"`
	Instructions    string    `gorm:"type:text" json:"instructions"`
	Rating          float64   `gorm:"type:float" json:"rating"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	Servings        int       `json:"servings"`
	Calories        float64   `gorm:"type:float" json:"calories"`
}

// TotalTimeMinutes is the combined preparation and cooking time.
func (r Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}
