package dice

// Sequence is a cursor over the fixed lookup table. Each trial owns its own
// Sequence; the table itself is shared read-only.
//
// The zero value is a Sequence positioned at cursor 0.
type Sequence struct {
	cursor int
}

// NewSequence returns a Sequence positioned at start.
//
// Precondition: start >= 0.
func NewSequence(start int) *Sequence {
	return &Sequence{cursor: start}
}

// Reset repositions the cursor at start.
//
// Precondition: start >= 0.
func (s *Sequence) Reset(start int) {
	s.cursor = start
}

// Cursor returns the current, unreduced cursor value.
func (s *Sequence) Cursor() int {
	return s.cursor
}

// Next advances the cursor by one and returns the table entry it now points at.
// The first call after Reset(c) returns At(c+1), never At(c).
//
// Postcondition: Cursor() is one greater than before the call.
func (s *Sequence) Next() byte {
	s.cursor++
	return At(s.cursor)
}

// Peek returns the value the next call to Next would return, without moving
// the cursor.
func (s *Sequence) Peek() byte {
	return At(s.cursor + 1)
}

// Advance moves the cursor forward by n without producing a value. It models
// draws consumed elsewhere between two reads.
//
// Precondition: n >= 0.
func (s *Sequence) Advance(n int) {
	s.cursor += n
}

// Intn draws the next table value and reduces it into [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" otherwise.
// Postcondition: consumes exactly one draw.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	return int(s.Next()) % n
}
