package domain

// Actor is the authenticated caller of a write. The zero value manages
// nothing.
type Actor struct {
	ID   uint
	Role string
}

// UserID is the audit reference, nil when the caller is anonymous.
func (a Actor) UserID() *uint {
	if a.ID == 0 {
		return nil
	}
	id := a.ID
	return &id
}
