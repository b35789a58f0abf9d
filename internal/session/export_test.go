package session

import "time"

// SetClock replaces the store's time source.
func (st *Store) SetClock(now func() time.Time) { st.now = now }
