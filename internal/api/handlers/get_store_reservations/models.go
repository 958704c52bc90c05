package get_store_reservations

import (
	"fmt"
	"strconv"
	"time"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	"github.com/LoLe05/jarimae-sub001/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// Параметр date задаёт один день; startDate/endDate задают период.
func ToServiceRequest(
	storeID int64,
	userID int64,
	dateStr string,
	startDateStr string,
	endDateStr string,
	statusStr string,
	includeInactiveStr string,
) (*models.GetStoreReservationsRequest, error) {
	req := &models.GetStoreReservationsRequest{
		UserID:          userID,
		StoreID:         storeID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим date если указана (один день)
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	// Парсим период, если указан (имеет приоритет над date)
	if startDateStr != "" || endDateStr != "" {
		if startDateStr == "" || endDateStr == "" {
			return nil, fmt.Errorf("both startDate and endDate are required for a period")
		}

		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		if endDate.Before(startDate) {
			return nil, fmt.Errorf("endDate must not be before startDate")
		}

		req.StartDate = &startDate
		req.EndDate = &endDate
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
