package keyindex

import (
	"io"
	"strconv"
	"strings"
)

// Table maps slots to keys. Unassigned slots hold a "x<slot>" placeholder.
type Table struct {
	slots []string
}

// NewTable creates a table with n pre-seeded slots.
func NewTable(n int) *Table {
	if n < 0 {
		n = 0
	}

	slots := make([]string, n)
	for i := range slots {
		slots[i] = Placeholder(i)
	}
	return &Table{slots: slots}
}

// Placeholder returns the default value of a slot.
func Placeholder(slot int) string {
	return "x" + strconv.Itoa(slot)
}

// Len returns the number of slots.
func (t *Table) Len() int { return len(t.slots) }

// Get returns the value of a slot. It returns an empty string for
// slots outside the table.
func (t *Table) Get(slot int) string {
	if slot < 0 || slot >= len(t.slots) {
		return ""
	}
	return t.slots[slot]
}

// Set stores key in slot, replacing any previous value. It reports
// false if the slot is outside the table.
func (t *Table) Set(slot int, key string) bool {
	if slot < 0 || slot >= len(t.slots) {
		return false
	}
	t.slots[slot] = key
	return true
}

// String renders the table as a single '|' separated line.
func (t *Table) String() string {
	return strings.Join(t.slots, "|")
}

// WriteTo writes the rendered table followed by a newline to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String()+"\n")
	return int64(n), err
}
