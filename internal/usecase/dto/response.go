package dto

import "time"

// CityResponse - город в ответе API на выбранном языке
type CityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CityFullResponse - город со всеми языками
type CityFullResponse struct {
	ID     string `json:"id"`
	NameEn string `json:"name_en"`
	NameRu string `json:"name_ru"`
	NameHe string `json:"name_he"`
	Slug   string `json:"slug"`
}

// TaxonomyResponse - тип площадки или события на выбранном языке
type TaxonomyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TaxonomyFullResponse - тип со всеми языками
type TaxonomyFullResponse struct {
	ID     string `json:"id"`
	NameEn string `json:"name_en"`
	NameRu string `json:"name_ru"`
	NameHe string `json:"name_he"`
	Slug   string `json:"slug"`
}

// VenueResponse - площадка на выбранном языке
type VenueResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	VenueType   string    `json:"venue_type"`
	City        string    `json:"city"`
	Location    []float64 `json:"location"`
	Website     string    `json:"website,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	IsActive    bool      `json:"is_active"`
	ImagePath   string    `json:"image_path"`
	Slug        string    `json:"slug"`
}

// EventResponse - событие на выбранном языке, даты в местном времени
type EventResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Venue       string `json:"venue"`
	EventType   string `json:"event_type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PriceType   string `json:"price_type"`
	PriceAmount *int   `json:"price_amount,omitempty"`
	IsActive    bool   `json:"is_active"`
	ImagePath   string `json:"image_path"`
	Slug        string `json:"slug"`
}

// UpdateResult - результат обновления с отчётом об изменившихся полях
type UpdateResult[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// UserResponse - пользователь в ответе API
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	DefaultLang    string    `json:"default_lang"`
	FavoriteEvents []string  `json:"favorite_events"`
	CreatedAt      time.Time `json:"created_at"`
	LastLogin      time.Time `json:"last_login"`
}

// TokenResponse - выданный JWT
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserResponse `json:"user"`
}
