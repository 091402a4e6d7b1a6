package models

// Rate is one row of the room-rate table served by /api/rates.
type Rate struct {
	RoomType     string `json:"roomType"`
	RatePerNight int64  `json:"ratePerNight"`
}

// ReservationRequest is the payload sent to create a reservation.
// Dates travel as YYYY-MM-DD strings; the server owns parsing and the
// check-out-after-check-in rule.
type ReservationRequest struct {
	ReservationNumber string `json:"reservationNumber"`
	GuestName         string `json:"guestName"`
	Address           string `json:"address"`
	ContactNumber     string `json:"contactNumber"`
	RoomType          string `json:"roomType"`
	CheckIn           string `json:"checkIn"`
	CheckOut          string `json:"checkOut"`
}

// Reservation mirrors the server-held record. It is never cached; every
// lookup re-fetches it.
type Reservation struct {
	ReservationNumber string `json:"reservationNumber"`
	GuestName         string `json:"guestName"`
	Address           string `json:"address"`
	ContactNumber     string `json:"contactNumber"`
	RoomType          string `json:"roomType"`
	CheckIn           string `json:"checkIn"`
	CheckOut          string `json:"checkOut"`
}

// Bill is computed server-side and only rendered here. Numeric fields are
// validated at decode time: a non-numeric value is a decode failure, not
// something to render as-is.
type Bill struct {
	ReservationNumber string `json:"reservationNumber"`
	GuestName         string `json:"guestName"`
	RoomType          string `json:"roomType"`
	CheckIn           string `json:"checkIn"`
	CheckOut          string `json:"checkOut"`
	Nights            int64  `json:"nights"`
	RatePerNight      int64  `json:"ratePerNight"`
	Total             int64  `json:"total"`
}

// Room is one enumerated room type offered by the Add Reservation form,
// declared in rooms.yaml.
type Room struct {
	Type         string `yaml:"type"`
	RatePerNight int64  `yaml:"rate_per_night"`
}
