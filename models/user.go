// file: models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"time"
)

type UserRole string

const (
	RoleOrganizer UserRole = "organizer"
	RoleReferee   UserRole = "referee"
)

type User struct {
	ID       uint32   `gorm:"primarykey" json:"id"`
	Username string   `gorm:"size:50;unique;not null" json:"username"`
	Password string   `gorm:"size:255;not null" json:"-"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Role     UserRole `gorm:"size:20;not null;default:'referee'" json:"role"`

	// Referee aggregates, recomputed from the full rating set on every insert.
	RatingAverage float64 `json:"calificacion_promedio"`
	RatingCount   uint    `json:"total_calificaciones"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "refzone_user"
}

// BeforeSave hashes the password on create and whenever it changes.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
