package get_availability

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StoreID <= 0 {
		return fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PartySize <= 0 {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	if req.PreferredTime != nil {
		if err := req.PreferredTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid preferredTime format: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
