package service

import "errors"

var (
	// ErrInvalidPassengerID is returned when a passenger ID is empty.
	ErrInvalidPassengerID = errors.New("invalid passenger id")

	// ErrInvalidTicketID is returned when a ticket ID is empty.
	ErrInvalidTicketID = errors.New("invalid ticket id")

	// ErrInvalidRideID is returned when a ride ID is empty.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidLicensePlate is returned when a bus license plate is empty
	// or too long.
	ErrInvalidLicensePlate = errors.New("invalid license plate")

	// ErrInvalidLicenseID is returned when a driver license ID is empty.
	ErrInvalidLicenseID = errors.New("invalid license id")

	// ErrInvalidStartTime is returned when a ride start time is missing.
	ErrInvalidStartTime = errors.New("invalid start time")

	// ErrInvalidPassengerName is returned when a passenger name field is
	// empty.
	ErrInvalidPassengerName = errors.New("invalid passenger name")

	// ErrTicketAlreadyUsed is returned when a one-time ticket has already
	// been consumed.
	ErrTicketAlreadyUsed = errors.New("ticket already used")

	// ErrTicketNotYetValid is returned when a weekly ticket is validated
	// before its issue time.
	ErrTicketNotYetValid = errors.New("ticket not yet valid")
)
