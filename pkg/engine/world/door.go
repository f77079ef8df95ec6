package world

// Locked returns true if entering the room needs a key
func (r *Room) Locked() bool {
	return r.requiredKey != ""
}

// RequiredKey returns the name of the key needed to enter, or ""
func (r *Room) RequiredKey() string {
	return r.requiredKey
}

// Lock requires the named key to enter the room
func (r *Room) Lock(key string) {
	r.requiredKey = key
}

// Unlock clears the lock permanently.
// The exit room stays locked: its key is checked on every entry.
func (r *Room) Unlock() {
	if r.exit {
		return
	}
	r.requiredKey = ""
}

// KeyMatches reports whether item can open this room
func (r *Room) KeyMatches(item *Item) bool {
	return r.Locked() && item.IsKey() && SameName(item.Name(), r.requiredKey)
}
