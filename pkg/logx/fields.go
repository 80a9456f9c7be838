package logx

const (
	FieldAvailable   = "available"
	FieldCost        = "cost"
	FieldDriverID    = "driver-id"
	FieldDurationMin = "duration-min"
	FieldPassengerID = "passenger-id"
	FieldRating      = "rating"
	FieldRequestID   = "request-id"
	FieldTripID      = "trip-id"
	FieldTripStatus  = "trip-status"
	FieldUserID      = "user-id"
	FieldVIN         = "vin"
)
