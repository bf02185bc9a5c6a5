package gateway

// Wire shapes owned by the upstream gateway. Field names are its contract,
// not ours; everything is copied into domain types at the client boundary.

// envelope is the gateway's uniform response body. statusCode inside the body
// is authoritative (200 means success even on odd transports); unused payload
// slots are simply absent.
type envelope struct {
	StatusCode              int           `json:"statusCode"`
	Message                 string        `json:"message,omitempty"`
	Token                   string        `json:"token,omitempty"`
	Role                    string        `json:"role,omitempty"`
	ExpirationTime          string        `json:"expirationTime,omitempty"`
	BookingConfirmationCode string        `json:"bookingConfirmationCode,omitempty"`
	User                    *UserDTO      `json:"user,omitempty"`
	Room                    *RoomDTO      `json:"room,omitempty"`
	Booking                 *BookingDTO   `json:"booking,omitempty"`
	Payment                 *PaymentDTO   `json:"payment,omitempty"`
	Dashboard               *DashboardDTO `json:"dashboard,omitempty"`
	UserList                []UserDTO     `json:"userList,omitempty"`
	RoomList                []RoomDTO     `json:"roomList,omitempty"`
	BookingList             []BookingDTO  `json:"bookingList,omitempty"`
	RoomTypes               []string      `json:"roomTypes,omitempty"`
}

type RoomDTO struct {
	ID          int64        `json:"id"`
	RoomType    string       `json:"roomType"`
	RoomPrice   float64      `json:"roomPrice"`
	Description string       `json:"roomDescription"`
	PhotoURL    string       `json:"roomPhotoUrl"`
	Bookings    []BookingDTO `json:"bookings,omitempty"`
}

type BookingDTO struct {
	ID               int64       `json:"id"`
	ConfirmationCode string      `json:"bookingConfirmationCode"`
	CheckInDate      string      `json:"checkInDate"`
	CheckOutDate     string      `json:"checkOutDate"`
	NumOfAdults      int         `json:"numOfAdults"`
	NumOfChildren    int         `json:"numOfChildren"`
	Status           string      `json:"status,omitempty"`
	User             *UserDTO    `json:"user,omitempty"`
	Room             *RoomDTO    `json:"room,omitempty"`
	Payment          *PaymentDTO `json:"payment,omitempty"`
}

type PaymentDTO struct {
	ID          int64   `json:"id"`
	BookingID   int64   `json:"bookingId"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	PaymentDate string  `json:"paymentDate,omitempty"`
}

type UserDTO struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	PhoneNumber string       `json:"phoneNumber"`
	Role        string       `json:"role"`
	Bookings    []BookingDTO `json:"bookings,omitempty"`
}

// DashboardDTO is precomputed upstream; the only figure derived on our side
// is the occupancy rate.
type DashboardDTO struct {
	TotalUsers             int64        `json:"totalUsers"`
	TotalAdmins            int64        `json:"totalAdmins"`
	TotalRegularUsers      int64        `json:"totalRegularUsers"`
	AllUsers               []UserDTO    `json:"allUsers,omitempty"`
	TotalBookings          int64        `json:"totalBookings"`
	ConfirmedBookings      int64        `json:"confirmedBookings"`
	CancelledBookings      int64        `json:"cancelledBookings"`
	AllBookings            []BookingDTO `json:"allBookings,omitempty"`
	TotalRooms             int64        `json:"totalRooms"`
	AvailableRooms         int64        `json:"availableRooms"`
	BookedRooms            int64        `json:"bookedRooms"`
	AllRooms               []RoomDTO    `json:"allRooms,omitempty"`
	TotalRevenue           float64      `json:"totalRevenue"`
	SuccessfulPayments     float64      `json:"successfulPayments"`
	FailedPayments         float64      `json:"failedPayments"`
	TotalPayments          int64        `json:"totalPayments"`
	SuccessfulPaymentCount int64        `json:"successfulPaymentCount"`
	FailedPaymentCount     int64        `json:"failedPaymentCount"`
	AllPayments            []PaymentDTO `json:"allPayments,omitempty"`
}

// LoginResult is what the login screen stores browser-side.
type LoginResult struct {
	Token          string
	Role           string
	ExpirationTime string
}

// BookingRequest is the create-booking payload.
type BookingRequest struct {
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	NumOfAdults   int    `json:"numOfAdults"`
	NumOfChildren int    `json:"numOfChildren"`
}

// BookingResult is the slice of the envelope the workflow needs after create.
type BookingResult struct {
	BookingID        int64
	ConfirmationCode string
}

// PaymentResult echoes the processed amount and final status.
type PaymentResult struct {
	Status string
	Amount float64
}
