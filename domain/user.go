package domain

import "context"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name         string `gorm:"type:varchar(64);not null;uniqueIndex:uq_users_name;column:name" json:"user_name"`
	PasswordHash string `gorm:"type:varchar(255);column:password_hash" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type CredentialsRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type UserRepository interface {
	CreateUser(ctx context.Context, name string, passwordHash string) (*User, error)
	GetUserByID(ctx context.Context, id uint) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, id uint) (*User, error)
}

type AuthRepository interface {
	CreateUser(ctx context.Context, name string, passwordHash string) (*User, error)
	GetUserByName(ctx context.Context, name string) (*User, error)
}
