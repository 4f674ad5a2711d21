package keyindex

import (
	"errors"
	"fmt"
)

const (
	// RecordSize is the size of a single sidecar record in bytes.
	RecordSize = 4
	// FieldWidth is the number of document bytes a record offset addresses.
	FieldWidth = 64
	// Delimiter separates the key from the surrounding field text.
	Delimiter = '~'
	// SidecarSuffix marks sidecar file names.
	SidecarSuffix = '#'
	// DefaultMaxSlots is the default table capacity.
	DefaultMaxSlots = 2048

	// maxSlotLimit is one past the largest value a record can encode.
	maxSlotLimit = 1 << 16
)

var (
	// ErrCapacityExceeded is returned when a record targets a slot outside the table.
	ErrCapacityExceeded = errors.New("keyindex: capacity exceeded")
	// ErrUnsupportedExtension is returned for sidecar files with an unknown extension.
	ErrUnsupportedExtension = errors.New("keyindex: unexpected extension")
)

var (
	errKeyDelimiter = errors.New("keyindex: key must not contain the delimiter")
	errKeyTooLong   = errors.New("keyindex: key does not fit into a field")
	errOffsetRange  = errors.New("keyindex: document exceeds addressable offset range")
	errClosed       = errors.New("keyindex: is closed")
)

// sidecar extension -> document extension
var documentExts = map[string]string{
	".ht#": ".htm",
	".xm#": ".xml",
}

// --------------------------------------------------------------------

// CapacityError reports a record whose value does not fit the table.
type CapacityError struct {
	Value    uint16 // decoded slot value
	MaxSlots int    // configured capacity
	Sidecar  string // sidecar file name, if known
}

func (e *CapacityError) Error() string {
	where := ""
	if e.Sidecar != "" {
		where = " in " + e.Sidecar
	}
	return fmt.Sprintf("keyindex: value %d%s out of range, increase max slots (currently %d) to at least %d", e.Value, where, e.MaxSlots, int(e.Value)+1)
}

// Unwrap allows errors.Is(err, ErrCapacityExceeded).
func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// ExtensionError reports a sidecar file with an unsupported extension.
type ExtensionError struct {
	Name string // file name
	Ext  string // offending extension
}

func (e *ExtensionError) Error() string {
	return fmt.Sprintf("keyindex: unexpected extension %s (%s)", e.Ext, e.Name)
}

// Unwrap allows errors.Is(err, ErrUnsupportedExtension).
func (e *ExtensionError) Unwrap() error { return ErrUnsupportedExtension }
