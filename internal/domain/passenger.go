package domain

// Passenger represents a registered passenger. Name fields are mutable;
// passengers are never deleted.
type Passenger struct {
	ID        string
	FirstName string
	LastName  string
}
