package gpio

import (
	"errors"
	"testing"
)

func TestFakeChipAcquireStartsInactive(t *testing.T) {
	tests := []struct {
		name      string
		active    Level
		wantLevel Level
	}{
		{"active high", High, Low},
		{"active low", Low, High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFakeChip()
			line, err := c.Acquire(17, tt.active)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			active, err := line.IsActive()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if active {
				t.Error("new line should be inactive")
			}
			if got := c.Lines[17].Level(); got != tt.wantLevel {
				t.Errorf("level: got %v, want %v", got, tt.wantLevel)
			}
			if c.Lines[17].Writes != 0 {
				t.Errorf("expected no writes on acquire, got %d", c.Lines[17].Writes)
			}
		})
	}
}

func TestFakeLinePolarity(t *testing.T) {
	c := NewFakeChip()
	line, _ := c.Acquire(22, Low)
	fake := c.Lines[22]

	if err := line.SetActive(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.Level() != Low {
		t.Errorf("active-low line set active: got %v, want LOW", fake.Level())
	}
	if active, _ := line.IsActive(); !active {
		t.Error("expected IsActive after SetActive")
	}

	if err := line.SetInactive(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.Level() != High {
		t.Errorf("active-low line set inactive: got %v, want HIGH", fake.Level())
	}
	if fake.Writes != 2 {
		t.Errorf("writes: got %d, want 2", fake.Writes)
	}
}

func TestFakeChipBusy(t *testing.T) {
	c := NewFakeChip()
	line, err := c.Acquire(27, High)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Acquire(27, High)
	if !errors.Is(err, ErrLineBusy) {
		t.Fatalf("expected ErrLineBusy, got %v", err)
	}

	// Released lines can be acquired again
	line.Close()
	if _, err := c.Acquire(27, High); err != nil {
		t.Errorf("reacquire after close: %v", err)
	}
}

func TestFakeChipUnavailable(t *testing.T) {
	c := NewFakeChip()
	c.Unavailable[4] = ErrLineUnavailable

	_, err := c.Acquire(4, High)
	if !errors.Is(err, ErrLineUnavailable) {
		t.Fatalf("expected ErrLineUnavailable, got %v", err)
	}
	if _, ok := c.Lines[4]; ok {
		t.Error("unavailable line should not be recorded")
	}
}

func TestFakeChipInvalidLevel(t *testing.T) {
	c := NewFakeChip()
	if _, err := c.Acquire(5, Level(7)); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestFakeLineErrors(t *testing.T) {
	c := NewFakeChip()
	line, _ := c.Acquire(17, Low)
	fake := c.Lines[17]

	fake.WriteError = errors.New("simulated write error")
	if err := line.SetActive(); err == nil || err.Error() != "simulated write error" {
		t.Errorf("SetActive: unexpected error: %v", err)
	}
	if fake.Writes != 0 {
		t.Errorf("failed write should not count, got %d", fake.Writes)
	}

	fake.ReadError = errors.New("simulated read error")
	if _, err := line.IsActive(); err == nil {
		t.Error("expected read error")
	}
}

func TestFakeLineWriteAfterClose(t *testing.T) {
	c := NewFakeChip()
	line, _ := c.Acquire(17, High)
	line.Close()

	if err := line.SetActive(); err == nil {
		t.Error("expected error writing closed line")
	}
}

func TestLevelString(t *testing.T) {
	if High.String() != "HIGH" || Low.String() != "LOW" {
		t.Errorf("unexpected strings: %s %s", High, Low)
	}
	if Level(9).String() != "Level(9)" {
		t.Errorf("unexpected string for invalid level: %s", Level(9))
	}
}
