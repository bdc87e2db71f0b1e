package dto

// RegisterRequest - регистрация нового пользователя
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DefaultLang string `json:"default_lang" validate:"omitempty"`
}

// LoginRequest - вход по почте и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordResetRequest - запрос ссылки на сброс пароля
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmRequest - установка нового пароля по токену
type PasswordResetConfirmRequest struct {
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest - создание пользователя администратором
type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required"`
	IsActive    bool   `json:"is_active"`
	DefaultLang string `json:"default_lang" validate:"omitempty"`
}

// UpdateUserRequest - частичное обновление пользователя
type UpdateUserRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"is_active"`
	DefaultLang *string `json:"default_lang"`
}

// UpdateProfileRequest - обновление собственного профиля
type UpdateProfileRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password"`
	DefaultLang *string `json:"default_lang"`
}
