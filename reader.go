package keyindex

import (
	"bytes"
	"encoding/binary"
)

// Record is a single sidecar entry.
type Record struct {
	Offset uint16 // field offset within the document
	Value  uint16 // destination slot
}

// DecoderOptions define decoder specific options.
type DecoderOptions struct {
	// MaxSlots is the table capacity. Records with a value >= MaxSlots
	// abort decoding.
	// Default: 2048.
	MaxSlots int
}

func (o *DecoderOptions) norm() *DecoderOptions {
	var oo DecoderOptions
	if o != nil {
		oo = *o
	}

	if oo.MaxSlots < 1 {
		oo.MaxSlots = DefaultMaxSlots
	}

	return &oo
}

// Decoder applies sidecar records to a table.
type Decoder struct {
	o *DecoderOptions
}

// NewDecoder returns a Decoder.
func NewDecoder(o *DecoderOptions) *Decoder {
	return &Decoder{o: o.norm()}
}

// MaxSlots returns the configured capacity.
func (d *Decoder) MaxSlots() int { return d.o.MaxSlots }

// NewTable creates a table sized to the decoder capacity.
func (d *Decoder) NewTable() *Table { return NewTable(d.o.MaxSlots) }

// Decode reads all records from sidecar, extracts their keys from doc and
// stores them in t. Records are applied in file order. It returns a
// *CapacityError as soon as a record value exceeds the capacity; t may
// have been partially updated at that point.
func (d *Decoder) Decode(doc, sidecar []byte, t *Table) error {
	limit := d.o.MaxSlots
	if n := t.Len(); n < limit {
		limit = n
	}

	rr := NewRecordReader(sidecar)
	for rr.Next() {
		rec := rr.Record()
		key := ExtractKey(Field(doc, rec.Offset))

		if int(rec.Value) >= limit {
			return &CapacityError{Value: rec.Value, MaxSlots: limit}
		}
		t.Set(int(rec.Value), key)
	}
	return nil
}

// Field returns the FieldWidth bytes of doc starting at offset. The
// result is truncated at the end of doc and empty if offset is past it.
func Field(doc []byte, offset uint16) []byte {
	min := int(offset)
	if min >= len(doc) {
		return nil
	}

	max := min + FieldWidth
	if max > len(doc) {
		max = len(doc)
	}
	return doc[min:max]
}

// ExtractKey returns the second '~' separated component of field,
// splitting at most twice. It returns an empty string if field contains
// no delimiter.
func ExtractKey(field []byte) string {
	parts := bytes.SplitN(field, []byte{Delimiter}, 3)
	if len(parts) < 2 {
		return ""
	}
	return string(parts[1])
}

// --------------------------------------------------------------------

// RecordReader iterates over the records of a sidecar.
type RecordReader struct {
	sidecar []byte

	rpos int // the current record position
	rec  Record
}

// NewRecordReader wraps the raw sidecar bytes.
func NewRecordReader(sidecar []byte) *RecordReader {
	return &RecordReader{sidecar: sidecar, rpos: -1}
}

// NumRecords returns the number of complete records.
func (r *RecordReader) NumRecords() int { return len(r.sidecar) / RecordSize }

// Pos returns the index of the current record, -1 before the first call to Next.
func (r *RecordReader) Pos() int { return r.rpos }

// Record returns the current record.
func (r *RecordReader) Record() Record { return r.rec }

// More returns true if more records can be read.
func (r *RecordReader) More() bool { return r.rpos+1 < r.NumRecords() }

// Next advances the cursor to the next record and returns true if successful.
func (r *RecordReader) Next() bool {
	if !r.More() {
		return false
	}

	r.rpos++
	p := r.sidecar[r.rpos*RecordSize:]
	r.rec = Record{
		Offset: binary.LittleEndian.Uint16(p[0:]),
		Value:  binary.LittleEndian.Uint16(p[2:]),
	}
	return true
}
