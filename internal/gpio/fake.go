package gpio

import "fmt"

// FakeChip is a test double that hands out in-memory lines.
type FakeChip struct {
	// Lines holds every line acquired so far, keyed by offset.
	Lines map[int]*FakeLine

	// Unavailable maps offsets to the error Acquire returns for them.
	Unavailable map[int]error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeChip creates an empty FakeChip.
func NewFakeChip() *FakeChip {
	return &FakeChip{
		Lines:       make(map[int]*FakeLine),
		Unavailable: make(map[int]error),
	}
}

// Acquire returns a FakeLine driven to its inactive level.
// A line that is already held and not closed reports ErrLineBusy.
func (c *FakeChip) Acquire(offset int, active Level) (Line, error) {
	if err, ok := c.Unavailable[offset]; ok {
		return nil, fmt.Errorf("request line %d: %w", offset, err)
	}
	if !active.Valid() {
		return nil, fmt.Errorf("request line %d: invalid active level %v", offset, active)
	}
	if l, ok := c.Lines[offset]; ok && !l.Closed {
		return nil, fmt.Errorf("request line %d: %w", offset, ErrLineBusy)
	}

	l := &FakeLine{
		Offset:      offset,
		ActiveLevel: active,
		level:       active.Invert(),
	}
	c.Lines[offset] = l
	return l, nil
}

// Close marks the chip as closed.
func (c *FakeChip) Close() error {
	c.Closed = true
	return nil
}

// FakeLine records the electrical level driven by its owner.
type FakeLine struct {
	Offset      int
	ActiveLevel Level

	// Writes counts SetActive and SetInactive calls.
	Writes int

	// WriteError, if set, will be returned by SetActive and SetInactive.
	WriteError error

	// ReadError, if set, will be returned by IsActive.
	ReadError error

	// Closed tracks if Close was called.
	Closed bool

	level Level
}

// SetActive drives the line to ActiveLevel.
func (l *FakeLine) SetActive() error {
	return l.set(l.ActiveLevel)
}

// SetInactive drives the line to the inverse of ActiveLevel.
func (l *FakeLine) SetInactive() error {
	return l.set(l.ActiveLevel.Invert())
}

func (l *FakeLine) set(level Level) error {
	if l.WriteError != nil {
		return l.WriteError
	}
	if l.Closed {
		return fmt.Errorf("set line %d: closed", l.Offset)
	}
	l.Writes++
	l.level = level
	return nil
}

// IsActive reports whether the line sits at ActiveLevel.
func (l *FakeLine) IsActive() (bool, error) {
	if l.ReadError != nil {
		return false, l.ReadError
	}
	return l.level == l.ActiveLevel, nil
}

// Level returns the electrical level currently driven.
func (l *FakeLine) Level() Level {
	return l.level
}

// Close marks the line as released.
func (l *FakeLine) Close() error {
	l.Closed = true
	return nil
}
