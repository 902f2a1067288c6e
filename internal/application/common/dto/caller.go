// Package dto provides common data transfer objects shared across domains.
package dto

// Caller is the authenticated identity a request acts on behalf of.
// The zero value is an anonymous caller.
type Caller struct {
	UserID       uint
	Username     string
	IsTeamMember bool
	IsAdmin      bool
}

func (c Caller) IsAuthenticated() bool {
	return c.UserID != 0
}

// UserIDPtr returns nil for anonymous callers.
func (c Caller) UserIDPtr() *uint {
	if c.UserID == 0 {
		return nil
	}
	id := c.UserID
	return &id
}
