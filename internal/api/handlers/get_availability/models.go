package get_availability

import (
	"strconv"
	"time"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	getAvailability "github.com/LoLe05/jarimae-sub001/internal/usecase/get_availability"
	"github.com/LoLe05/jarimae-sub001/pkg/types"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime         string `json:"startTime"` // "18:30"
	DurationMinutes   int    `json:"durationMinutes"`
	RemainingCapacity int    `json:"remainingCapacity"`
	Available         bool   `json:"available"`
}

// BusinessHourResponse HTTP модель расписания на день
type BusinessHourResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	IsClosed  bool   `json:"isClosed"`
}

// PreferredTimeResponse HTTP модель результата проверки желаемого времени
type PreferredTimeResponse struct {
	StartTime         string `json:"startTime"`
	Available         bool   `json:"available"`
	RemainingCapacity int    `json:"remainingCapacity"`
	Reason            string `json:"reason,omitempty"`
}

// AvailabilityResponse HTTP модель ответа с доступностью
type AvailabilityResponse struct {
	StoreID        int64                  `json:"storeId"`
	Date           string                 `json:"date"`
	PartySize      int                    `json:"partySize"`
	Available      bool                   `json:"available"`
	Slots          []SlotResponse         `json:"slots"`
	AvailableSlots []SlotResponse         `json:"availableSlots"`
	BusinessHour   BusinessHourResponse   `json:"businessHour"`
	PreferredTime  *PreferredTimeResponse `json:"preferredTime,omitempty"`
}

// ToUseCaseRequest формирует запрос к use case из параметров URL и query
func ToUseCaseRequest(storeID int64, dateStr, partySizeStr, preferredTimeStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	partySize, err := strconv.Atoi(partySizeStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailability.Request{
		StoreID:   storeID,
		Date:      date,
		PartySize: partySize,
	}

	if preferredTimeStr != "" {
		preferredTime, err := types.NewTimeStringFromString(preferredTimeStr)
		if err != nil {
			return nil, err
		}
		req.PreferredTime = &preferredTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		StoreID:        resp.StoreID,
		Date:           resp.Date.Format(domain.DateFormat),
		PartySize:      resp.PartySize,
		Available:      resp.Available,
		Slots:          fromDomainSlots(resp.Slots),
		AvailableSlots: fromDomainSlots(resp.AvailableSlots),
		BusinessHour: BusinessHourResponse{
			DayOfWeek: resp.BusinessHour.DayOfWeek,
			IsClosed:  resp.BusinessHour.IsClosed,
		},
	}

	if !resp.BusinessHour.IsClosed {
		out.BusinessHour.OpenTime = resp.BusinessHour.OpenTime.String()
		out.BusinessHour.CloseTime = resp.BusinessHour.CloseTime.String()
	}

	if resp.PreferredTime != nil {
		out.PreferredTime = &PreferredTimeResponse{
			StartTime:         resp.PreferredTime.StartTime.String(),
			Available:         resp.PreferredTime.Available,
			RemainingCapacity: resp.PreferredTime.RemainingCapacity,
			Reason:            resp.PreferredTime.Reason,
		}
	}

	return out
}

func fromDomainSlots(slots []domain.TimeSlot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{
			StartTime:         s.StartTime.String(),
			DurationMinutes:   s.DurationMinutes,
			RemainingCapacity: s.RemainingCapacity,
			Available:         s.Available,
		}
	}
	return out
}
