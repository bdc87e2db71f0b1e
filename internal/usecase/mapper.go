package usecase

import (
	"time"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/pkg/dates"
	"github.com/events-directory/internal/usecase/dto"
)

func toCityResponse(c *domain.City, lang string) dto.CityResponse {
	return dto.CityResponse{
		ID:   c.ID.Hex(),
		Name: c.Name(lang),
		Slug: c.Slug,
	}
}

func toCityFullResponse(c *domain.City) dto.CityFullResponse {
	return dto.CityFullResponse{
		ID:     c.ID.Hex(),
		NameEn: c.NameEn,
		NameRu: c.NameRu,
		NameHe: c.NameHe,
		Slug:   c.Slug,
	}
}

func toVenueTypeResponse(vt *domain.VenueType, lang string) dto.TaxonomyResponse {
	return dto.TaxonomyResponse{
		ID:   vt.ID.Hex(),
		Name: vt.Name(lang),
		Slug: vt.Slug,
	}
}

func toVenueTypeFullResponse(vt *domain.VenueType) dto.TaxonomyFullResponse {
	return dto.TaxonomyFullResponse{
		ID:     vt.ID.Hex(),
		NameEn: vt.NameEn,
		NameRu: vt.NameRu,
		NameHe: vt.NameHe,
		Slug:   vt.Slug,
	}
}

func toEventTypeResponse(et *domain.EventType, lang string) dto.TaxonomyResponse {
	return dto.TaxonomyResponse{
		ID:   et.ID.Hex(),
		Name: et.Name(lang),
		Slug: et.Slug,
	}
}

func toEventTypeFullResponse(et *domain.EventType) dto.TaxonomyFullResponse {
	return dto.TaxonomyFullResponse{
		ID:     et.ID.Hex(),
		NameEn: et.NameEn,
		NameRu: et.NameRu,
		NameHe: et.NameHe,
		Slug:   et.Slug,
	}
}

func toVenueResponse(v *domain.Venue, lang, venueTypeName, cityName string) dto.VenueResponse {
	return dto.VenueResponse{
		ID:          v.ID.Hex(),
		Name:        v.Name(lang),
		Address:     v.Address(lang),
		Description: v.Description(lang),
		VenueType:   venueTypeName,
		City:        cityName,
		Location:    v.Location.Coordinates,
		Website:     v.Website,
		Phone:       v.Phone,
		Email:       v.Email,
		IsActive:    v.IsActive,
		ImagePath:   v.ImagePath,
		Slug:        v.Slug,
	}
}

func toEventResponse(e *domain.Event, lang, venueName, eventTypeName string, loc *time.Location) dto.EventResponse {
	return dto.EventResponse{
		ID:          e.ID.Hex(),
		Name:        e.Name(lang),
		Description: e.Description(lang),
		Venue:       venueName,
		EventType:   eventTypeName,
		StartDate:   dates.ToLocal(e.StartDate, loc).Format(dates.DateTimeLayout),
		EndDate:     dates.ToLocal(e.EndDate, loc).Format(dates.DateTimeLayout),
		PriceType:   e.PriceType,
		PriceAmount: e.PriceAmount,
		IsActive:    e.IsActive,
		ImagePath:   e.ImagePath,
		Slug:        e.Slug,
	}
}

func toUserResponse(u *domain.User) dto.UserResponse {
	favorites := make([]string, len(u.FavoriteEvents))
	for i, id := range u.FavoriteEvents {
		favorites[i] = id.Hex()
	}
	return dto.UserResponse{
		ID:             u.ID.Hex(),
		Email:          u.Email,
		Role:           u.Role,
		IsActive:       u.IsActive,
		DefaultLang:    u.DefaultLang,
		FavoriteEvents: favorites,
		CreatedAt:      u.CreatedAt,
		LastLogin:      u.LastLogin,
	}
}
