// Package dates - разбор дат запроса и конвертация между локальным
// временем афиши и UTC, в котором даты хранятся.
package dates

import (
	"time"

	"github.com/events-directory/internal/pkg/errors"
)

const (
	// DateTimeLayout - формат дат во внешнем API
	DateTimeLayout = "2006-01-02 15:04"

	layoutDate = "2006-01-02"
)

// ParseLocal разбирает дату запроса в локальной таймзоне и возвращает
// UTC. Если передана только дата без времени, дата окончания получает
// 23:59 - событие длится до конца дня.
func ParseLocal(value string, isStart bool, loc *time.Location) (time.Time, error) {
	var parsed time.Time
	var err error

	if len(value) > len(layoutDate) {
		parsed, err = time.ParseInLocation(DateTimeLayout, value, loc)
	} else {
		parsed, err = time.ParseInLocation(layoutDate, value, loc)
		if err == nil && !isStart {
			parsed = parsed.Add(23*time.Hour + 59*time.Minute)
		}
	}
	if err != nil {
		return time.Time{}, errors.Validation("Invalid date format. Use YYYY-MM-DD or YYYY-MM-DD HH:MM")
	}

	return parsed.UTC(), nil
}

// ToLocal переводит хранимое UTC-время в локальную таймзону
func ToLocal(t time.Time, loc *time.Location) time.Time {
	return t.In(loc)
}
