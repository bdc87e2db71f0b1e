package dto

import (
	"bytes"
	"encoding/json"
)

// CreateCityRequest - город создается по английскому названию,
// остальные языки приходят из географического справочника
type CreateCityRequest struct {
	NameEn string `json:"name_en" validate:"required,min=3,max=50,name_en"`
}

// TaxonomyRequest - создание типа площадки или события: достаточно
// одного языка, недостающие дозаполняются автоматически
type TaxonomyRequest struct {
	NameEn string `json:"name_en" validate:"omitempty,name_en"`
	NameRu string `json:"name_ru" validate:"omitempty,name_ru"`
	NameHe string `json:"name_he" validate:"omitempty,name_he"`
}

// UpdateTaxonomyRequest - полное обновление типа, все языки обязательны
type UpdateTaxonomyRequest struct {
	NameEn string `json:"name_en" validate:"required,name_en"`
	NameRu string `json:"name_ru" validate:"required,name_ru"`
	NameHe string `json:"name_he" validate:"required,name_he"`
}

// CreateVenueRequest - создание площадки. Название и описание дозаполняются
// автоматически, адрес геокодируется.
type CreateVenueRequest struct {
	NameEn        string `json:"name_en" form:"name_en" validate:"omitempty,min=3,max=100,name_en"`
	NameRu        string `json:"name_ru" form:"name_ru" validate:"omitempty,min=3,max=100,name_ru"`
	NameHe        string `json:"name_he" form:"name_he" validate:"omitempty,min=3,max=100,name_he"`
	AddressEn     string `json:"address_en" form:"address_en" validate:"omitempty,min=5,max=200"`
	AddressRu     string `json:"address_ru" form:"address_ru" validate:"omitempty,min=5,max=200"`
	AddressHe     string `json:"address_he" form:"address_he" validate:"omitempty,min=5,max=200"`
	DescriptionEn string `json:"description_en" form:"description_en" validate:"omitempty,min=20,max=1000"`
	DescriptionRu string `json:"description_ru" form:"description_ru" validate:"omitempty,min=20,max=1000"`
	DescriptionHe string `json:"description_he" form:"description_he" validate:"omitempty,min=20,max=1000"`
	VenueType     string `json:"venue_type" form:"venue_type" validate:"required"`
	City          string `json:"city" form:"city" validate:"required"`
	Website       string `json:"website" form:"website" validate:"omitempty,url"`
	Phone         string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Email         string `json:"email" form:"email" validate:"omitempty,email"`
	Image         []byte `json:"-"`
}

// UpdateVenueRequest - частичное обновление площадки, nil означает
// "поле не прислано"
type UpdateVenueRequest struct {
	NameEn        *string `json:"name_en" form:"name_en" validate:"omitempty,min=3,max=100,name_en"`
	NameRu        *string `json:"name_ru" form:"name_ru" validate:"omitempty,min=3,max=100,name_ru"`
	NameHe        *string `json:"name_he" form:"name_he" validate:"omitempty,min=3,max=100,name_he"`
	AddressEn     *string `json:"address_en" form:"address_en" validate:"omitempty,min=5,max=200"`
	AddressRu     *string `json:"address_ru" form:"address_ru" validate:"omitempty,min=5,max=200"`
	AddressHe     *string `json:"address_he" form:"address_he" validate:"omitempty,min=5,max=200"`
	DescriptionEn *string `json:"description_en" form:"description_en" validate:"omitempty,min=20,max=1000"`
	DescriptionRu *string `json:"description_ru" form:"description_ru" validate:"omitempty,min=20,max=1000"`
	DescriptionHe *string `json:"description_he" form:"description_he" validate:"omitempty,min=20,max=1000"`
	VenueType     *string `json:"venue_type" form:"venue_type"`
	City          *string `json:"city" form:"city"`
	Website       *string `json:"website" form:"website" validate:"omitempty,url"`
	Phone         *string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Email         *string `json:"email" form:"email" validate:"omitempty,email"`
	IsActive      *bool   `json:"is_active" form:"is_active"`
	Image         []byte  `json:"-"`
}

// CreateEventRequest - создание события. Даты приходят в местном времени
// в формате "2006-01-02 15:04" или "2006-01-02".
type CreateEventRequest struct {
	NameEn        string `json:"name_en" form:"name_en" validate:"omitempty,min=3,max=200,name_en"`
	NameRu        string `json:"name_ru" form:"name_ru" validate:"omitempty,min=3,max=200,name_ru"`
	NameHe        string `json:"name_he" form:"name_he" validate:"omitempty,min=3,max=200,name_he"`
	DescriptionEn string `json:"description_en" form:"description_en" validate:"omitempty,min=20,max=2000"`
	DescriptionRu string `json:"description_ru" form:"description_ru" validate:"omitempty,min=20,max=2000"`
	DescriptionHe string `json:"description_he" form:"description_he" validate:"omitempty,min=20,max=2000"`
	Venue         string `json:"venue" form:"venue" validate:"required"`
	EventType     string `json:"event_type" form:"event_type" validate:"required"`
	StartDate     string `json:"start_date" form:"start_date" validate:"required"`
	EndDate       string `json:"end_date" form:"end_date" validate:"required"`
	PriceType     string `json:"price_type" form:"price_type" validate:"required"`
	PriceAmount   *int   `json:"price_amount" form:"price_amount"`
	Image         []byte `json:"-"`
}

// UpdateEventRequest - частичное обновление события
type UpdateEventRequest struct {
	NameEn        *string `json:"name_en" form:"name_en" validate:"omitempty,min=3,max=200,name_en"`
	NameRu        *string `json:"name_ru" form:"name_ru" validate:"omitempty,min=3,max=200,name_ru"`
	NameHe        *string `json:"name_he" form:"name_he" validate:"omitempty,min=3,max=200,name_he"`
	DescriptionEn *string `json:"description_en" form:"description_en" validate:"omitempty,min=20,max=2000"`
	DescriptionRu *string `json:"description_ru" form:"description_ru" validate:"omitempty,min=20,max=2000"`
	DescriptionHe *string `json:"description_he" form:"description_he" validate:"omitempty,min=20,max=2000"`
	Venue         *string `json:"venue" form:"venue"`
	EventType     *string `json:"event_type" form:"event_type"`
	StartDate     *string `json:"start_date" form:"start_date"`
	EndDate       *string `json:"end_date" form:"end_date"`
	PriceType     *string `json:"price_type" form:"price_type"`
	PriceAmount   *int    `json:"price_amount" form:"price_amount"`
	ClearPrice    bool    `json:"-"`
	IsActive      *bool   `json:"is_active" form:"is_active"`
	Image         []byte  `json:"-"`
}

// UnmarshalJSON отличает явный null в price_amount от отсутствия поля:
// null - запрос на очистку цены при переходе на free или tba,
// отсутствие - "поле не меняется"
func (r *UpdateEventRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateEventRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields["price_amount"]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		r.ClearPrice = true
	}
	return nil
}

// VenueListFilter - параметры списка площадок
type VenueListFilter struct {
	Lang       string
	City       string
	VenueType  string
	ActiveOnly bool
}

// EventListFilter - параметры списка событий
type EventListFilter struct {
	Lang       string
	City       string
	Venue      string
	EventType  string
	From       string
	To         string
	ActiveOnly bool
	SortDesc   bool
}
