package models

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

const passwordMinLength = 6

// User is a staff member. Users are the recipients of notifications
// and the actors recorded on donations and distributions.
type User struct {
	DefaultModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Role         Role
	Status       UserStatus
	LastActive   *time.Time
}

func (u User) Self() string {
	return "User"
}

// SetPassword hashes the password with bcrypt and stores the hash.
func (u *User) SetPassword(password string) error {
	if len(password) < passwordMinLength {
		return ErrUserPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports if the password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Name == "" {
		return ErrUserNameEmpty
	}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrUserEmailInvalid
	}

	if u.PasswordHash == "" {
		return ErrUserPasswordTooShort
	}

	if u.Role == "" {
		u.Role = RoleVolunteer
	}

	if u.Role != RoleAdmin && u.Role != RoleVolunteer {
		return ErrUserRoleInvalid
	}

	if u.Status == "" {
		u.Status = UserActive
	}

	if u.Status != UserActive && u.Status != UserInactive {
		return ErrUserStatusInvalid
	}

	return nil
}
