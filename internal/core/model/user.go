package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // bcrypt hash, never rendered
	Admin     bool      `bson:"admin" json:"admin"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		Admin:     false,
		CreatedAt: time.Now(),
	}
}
