package keyindex

import (
	"bytes"
	"encoding/binary"
	"io"
)

// WriterOptions define writer specific options.
type WriterOptions struct {
	// Prefix is written in front of each key, before the first delimiter.
	// Must not contain the delimiter.
	// Default: "k".
	Prefix string

	// Padding fills each field up to FieldWidth.
	// Default: ' '.
	Padding byte
}

func (o *WriterOptions) norm() *WriterOptions {
	var oo WriterOptions
	if o != nil {
		oo = *o
	}

	if oo.Prefix == "" || bytes.IndexByte([]byte(oo.Prefix), Delimiter) != -1 {
		oo.Prefix = "k"
	}
	if oo.Padding == 0 || oo.Padding == Delimiter {
		oo.Padding = ' '
	}

	return &oo
}

// Writer instances write a document together with its sidecar.
type Writer struct {
	doc     io.Writer
	sidecar io.Writer
	o       *WriterOptions

	offset int    // current document offset
	tmp    []byte // scratch buffer
}

// NewWriter wraps a document and a sidecar writer and returns a Writer.
func NewWriter(doc, sidecar io.Writer, o *WriterOptions) *Writer {
	return &Writer{
		doc:     doc,
		sidecar: sidecar,
		o:       o.norm(),
		tmp:     make([]byte, FieldWidth),
	}
}

// Offset returns the current document offset.
func (w *Writer) Offset() int { return w.offset }

// Append writes key as a new document field and a record pointing
// slot at it.
func (w *Writer) Append(slot uint16, key string) error {
	if w.tmp == nil {
		return errClosed
	}
	if bytes.IndexByte([]byte(key), Delimiter) != -1 {
		return errKeyDelimiter
	}
	if len(w.o.Prefix)+len(key)+2 > FieldWidth {
		return errKeyTooLong
	}
	if w.offset >= maxSlotLimit {
		return errOffsetRange
	}

	offset := uint16(w.offset)
	if err := w.writeField(key); err != nil {
		return err
	}
	return w.AppendRecord(Record{Offset: offset, Value: slot})
}

// AppendRecord writes a raw record to the sidecar without touching the
// document. It may be used to point multiple slots at the same field.
func (w *Writer) AppendRecord(rec Record) error {
	if w.tmp == nil {
		return errClosed
	}

	var p [RecordSize]byte
	binary.LittleEndian.PutUint16(p[0:], rec.Offset)
	binary.LittleEndian.PutUint16(p[2:], rec.Value)
	_, err := w.sidecar.Write(p[:])
	return err
}

// Close closes the writer. It does not close the underlying writers.
func (w *Writer) Close() error {
	if w.tmp == nil {
		return errClosed
	}
	w.tmp = nil
	return nil
}

func (w *Writer) writeField(key string) error {
	buf := w.tmp[:0]
	buf = append(buf, w.o.Prefix...)
	buf = append(buf, Delimiter)
	buf = append(buf, key...)
	buf = append(buf, Delimiter)
	for len(buf) < FieldWidth {
		buf = append(buf, w.o.Padding)
	}

	n, err := w.doc.Write(buf)
	w.offset += n
	return err
}
