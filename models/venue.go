// file: models/venue.go
package models

import "time"

type Venue struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Address   string    `gorm:"size:200" json:"address,omitempty"`
	OwnerID   uint32    `gorm:"not null;index" json:"owner_id"`
	Owner     *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Venue) TableName() string {
	return "refzone_venue"
}
