package domain

import "time"

// Person is a randomly generated person as normalized from the person generator.
// DOB carries only a calendar date; Age is derived per request.
type Person struct {
	FirstName   string
	LastName    string
	Gender      string
	DOB         time.Time
	Age         int
	City        string
	Country     string
	Address     string
	Email       string
	Phone       string
	Nationality string
	Picture     string
}
