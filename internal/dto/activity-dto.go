package dto

// ActivityEntry is what callers hand to the activity logger. Details is
// marshaled to JSON before storage.
type ActivityEntry struct {
	UserID     string
	Action     string
	EntityType string
	EntityID   string
	Details    map[string]any
	IPAddress  string
	UserAgent  string
	Status     string // success (default), failed
	ErrorMsg   string
}
