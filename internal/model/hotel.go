package model

type Hotel struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	TotalRooms     int     `json:"total_rooms"`
	RemainingRooms int     `json:"remaining_rooms"`
	Image          string  `json:"image,omitempty"`
	Price          Decimal `json:"price,omitempty"`
	Rating         Decimal `json:"rating"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func (h Hotel) Key() int {
	return h.ID
}

func (h Hotel) Validate() error {
	ve := newValidationError()
	if h.TotalRooms < 0 {
		ve.add("total_rooms", "must not be negative")
	}
	if h.RemainingRooms < 0 {
		ve.add("remaining_rooms", "must not be negative")
	}
	if h.RemainingRooms > h.TotalRooms {
		ve.add("remaining_rooms", "must not exceed total_rooms")
	}
	return ve.orNil()
}

func (h Hotel) SoldOut() bool {
	return h.RemainingRooms == 0
}
