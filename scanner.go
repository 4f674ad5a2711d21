package keyindex

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Pair names a document and its sidecar.
type Pair struct {
	Base     string // common base name
	Document string // document file name
	Sidecar  string // sidecar file name
}

// DocumentExt returns the document extension for a sidecar file name.
// It returns an *ExtensionError if the extension is unknown.
func DocumentExt(sidecar string) (string, error) {
	ext := path.Ext(sidecar)
	if ext == sidecar { // dot-files have no extension
		ext = ""
	}

	docExt, ok := documentExts[ext]
	if !ok {
		return "", &ExtensionError{Name: sidecar, Ext: ext}
	}
	return docExt, nil
}

// IsSidecar returns true if name carries the sidecar suffix.
func IsSidecar(name string) bool {
	return strings.HasSuffix(name, string(SidecarSuffix))
}

// NewPair derives a pair from a sidecar file name.
func NewPair(sidecar string) (Pair, error) {
	docExt, err := DocumentExt(sidecar)
	if err != nil {
		return Pair{}, err
	}

	base := strings.TrimSuffix(sidecar, path.Ext(sidecar))
	return Pair{
		Base:     base,
		Document: base + docExt,
		Sidecar:  sidecar,
	}, nil
}

// Scan lists the top level of fsys and returns a pair for every sidecar
// file, ordered by file name. Directories are skipped.
func Scan(fsys fs.FS) ([]Pair, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	for _, ent := range entries {
		if ent.IsDir() || !IsSidecar(ent.Name()) {
			continue
		}

		p, err := NewPair(ent.Name())
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Load reads the document and sidecar of a pair.
func Load(fsys fs.FS, p Pair) (doc, sidecar []byte, err error) {
	if doc, err = fs.ReadFile(fsys, p.Document); err != nil {
		return nil, nil, fmt.Errorf("keyindex: read document: %w", err)
	}
	if sidecar, err = fs.ReadFile(fsys, p.Sidecar); err != nil {
		return nil, nil, fmt.Errorf("keyindex: read sidecar: %w", err)
	}
	return doc, sidecar, nil
}

// DecodeDir scans fsys and decodes every pair into t, in file name order.
// If visit is not nil, it is called before each pair is decoded. DecodeDir
// stops at the first error. The returned pairs are those decoded
// successfully.
func DecodeDir(fsys fs.FS, d *Decoder, t *Table, visit func(p Pair, numRecords int)) ([]Pair, error) {
	pairs, err := Scan(fsys)
	if err != nil {
		return nil, err
	}

	for i, p := range pairs {
		doc, sidecar, err := Load(fsys, p)
		if err != nil {
			return pairs[:i], err
		}
		if visit != nil {
			visit(p, NewRecordReader(sidecar).NumRecords())
		}

		if err := d.Decode(doc, sidecar, t); err != nil {
			var cerr *CapacityError
			if errors.As(err, &cerr) {
				cerr.Sidecar = p.Sidecar
			}
			return pairs[:i], err
		}
	}
	return pairs, nil
}
