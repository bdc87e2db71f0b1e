package domain

import (
	"regexp"
	"time"

	"github.com/events-directory/internal/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Роли пользователей
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// ConfirmationGracePeriod - окно подтверждения почты; аккаунты со
// старшим токеном удаляются ежедневной фоновой задачей.
const ConfirmationGracePeriod = 48 * time.Hour

var passwordRe = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)

// User - учётная запись. Пароль хранится как bcrypt-хеш.
type User struct {
	ID                       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email                    string               `bson:"email" json:"email"`
	Password                 string               `bson:"password" json:"-"`
	Role                     string               `bson:"role" json:"role"`
	IsActive                 bool                 `bson:"is_active" json:"is_active"`
	DefaultLang              string               `bson:"default_lang" json:"default_lang"`
	FavoriteEvents           []primitive.ObjectID `bson:"favorite_events" json:"favorite_events"`
	ConfirmationToken        *string              `bson:"email_confirmation_token,omitempty" json:"-"`
	ConfirmationTokenCreated *time.Time           `bson:"email_confirmation_token_created,omitempty" json:"-"`
	ResetToken               *string              `bson:"password_reset_token,omitempty" json:"-"`
	ResetTokenCreated        *time.Time           `bson:"password_reset_token_created,omitempty" json:"-"`
	CreatedAt                time.Time            `bson:"created_at" json:"created_at"`
	LastLogin                time.Time            `bson:"last_login" json:"last_login"`
}

// ValidatePassword - минимум 8 символов, только латиница, цифры и
// @$!%*?&, обязательны верхний и нижний регистр, цифра и спецсимвол.
func ValidatePassword(password string) error {
	ok := passwordRe.MatchString(password) &&
		regexp.MustCompile(`[a-z]`).MatchString(password) &&
		regexp.MustCompile(`[A-Z]`).MatchString(password) &&
		regexp.MustCompile(`\d`).MatchString(password) &&
		regexp.MustCompile(`[@$!%*?&]`).MatchString(password)
	if !ok {
		return errors.Validation("%s",
			"Password requirements: at least 8 characters, English letters only, "+
				"at least one uppercase letter, one lowercase letter, one number "+
				"and one special character (@$!%*?&)")
	}
	return nil
}

// HashPassword валидирует и хеширует пароль
func HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.ErrInternalServer
	}
	return string(hash), nil
}

// VerifyPassword сверяет пароль с хешем
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManageContent - может ли управлять справочниками, площадками и событиями
func (u *User) CanManageContent() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// HasFavorite - есть ли событие в избранном
func (u *User) HasFavorite(eventID primitive.ObjectID) bool {
	for _, id := range u.FavoriteEvents {
		if id == eventID {
			return true
		}
	}
	return false
}
