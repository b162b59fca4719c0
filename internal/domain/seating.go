package domain

// Room зал со столами
type Room struct {
	ID      int64
	VenueID int64
	Name    string
	Tables  []Table
}

// Table стол в зале
type Table struct {
	ID       int64
	RoomID   int64
	Label    string
	Capacity int
}

// Capacity возвращает число мест в зале
func (r *Room) Capacity() int {
	total := 0
	for _, t := range r.Tables {
		if t.Capacity > 0 {
			total += t.Capacity
		}
	}
	return total
}
