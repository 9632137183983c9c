//go:build !linux

package gpio

import "errors"

// RealChip is not available on non-Linux platforms.
type RealChip struct{}

// NewRealChip returns an error on non-Linux platforms.
func NewRealChip(name string) (*RealChip, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// Acquire is not implemented on non-Linux platforms.
func (c *RealChip) Acquire(offset int, active Level) (Line, error) {
	return nil, ErrLineUnavailable
}

// Close is not implemented on non-Linux platforms.
func (c *RealChip) Close() error {
	return nil
}
