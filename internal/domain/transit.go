package domain

import "time"

// Driver operates rides. The license ID is the natural key.
type Driver struct {
	LicenseID string
	FirstName string
	LastName  string
}

// BusModel describes a bus model shared by many buses.
type BusModel struct {
	ModelID int64
	Size    int
}

// Bus is a vehicle in the fleet, keyed by license plate.
type Bus struct {
	LicensePlate string
	ModelID      int64
	Working      bool
}

// Route is a numbered transit line.
type Route struct {
	RouteNo int
}

// Stop is a named boarding point.
type Stop struct {
	StopID      int64
	Name        string
	Coordinates string
}

// StopEnRoute places a stop on a route at a fixed position. Stop ordering
// is static metadata, never computed.
type StopEnRoute struct {
	StopID    int64
	RouteNo   int
	StopOrder int
}

// Ride is a scheduled trip instance: a bus on a route, operated by a
// driver, departing at a start time.
type Ride struct {
	ID           string
	LicensePlate string
	RouteNo      int
	LicenseID    string
	StartTime    time.Time
}

// RouteUsage is one row of the route usage report. TicketsSold carries the
// historical name of the report column; it counts rides scheduled on the
// route, not ticket validations.
type RouteUsage struct {
	RouteNo     int
	TicketsSold int
}
