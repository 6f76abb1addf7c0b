package entity

type Branch struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Address string `gorm:"size:500;not null" json:"address"`
	Hotline string `gorm:"size:20" json:"hotline"`
	MapURL  string `gorm:"column:map_url;size:1000" json:"mapUrl"`
}

func (Branch) TableName() string { return "branches" }
