package types

// NoteID identifies a note on the ledger. It is the note's commitment digest
// and shares the Word representation.
type NoteID Word

// NoteIDFromString decodes a hex string (with or without the 0x prefix) into a
// NoteID.
func NoteIDFromString(s string) (NoteID, error) {
	w, err := WordFromString(s)
	return NoteID(w), err
}

// Word returns the id as a plain Word.
func (id NoteID) Word() Word {
	return Word(id)
}

// Bytes returns the canonical byte representation of id.
func (id NoteID) Bytes() []byte {
	return Word(id).Bytes()
}

// Equals returns true if both ids are the same.
func (id NoteID) Equals(other NoteID) bool {
	return id == other
}

// String implements the stringer interface.
func (id NoteID) String() string {
	return Word(id).String()
}

// NoteTag is a 32-bit tag notes are indexed under. Clients subscribe to tags
// rather than to individual notes when syncing state.
type NoteTag uint32
