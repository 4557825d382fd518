package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidUserData    = errors.New("invalid user data")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Vehicle errors
var (
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrInvalidVehicleID     = errors.New("invalid vehicle id")
	ErrInvalidVehicleData   = errors.New("invalid vehicle data")
	ErrInvalidVehicleNumber = errors.New("invalid vehicle number")
)

// Driver / DriverItem errors
var (
	ErrNoDriverAssigned   = errors.New("no driver assigned to this vehicle")
	ErrInvalidDriverData  = errors.New("invalid driver data")
	ErrDriverItemNotFound = errors.New("driver item not found")
	ErrInvalidItemData    = errors.New("invalid driver item data")
	ErrInvalidQuantity    = errors.New("invalid item quantity")
)

// Tyre errors
var (
	ErrTyreNotFound    = errors.New("tyre not found")
	ErrInvalidTyreData = errors.New("invalid tyre data")
)

// Repair errors
var (
	ErrRepairNotFound    = errors.New("repair not found")
	ErrInvalidRepairID   = errors.New("invalid repair id")
	ErrInvalidRepairData = errors.New("invalid repair data")
)

// Signature errors
var (
	ErrSignatureNotFound    = errors.New("signature not found")
	ErrInvalidSignatureData = errors.New("invalid signature data")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Upstream errors
var (
	ErrImageHostUnavailable = errors.New("image host unavailable")
)

// General errors
var (
	ErrInternal   = errors.New("internal server error")
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)
