package session

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/bossa"
)

// openSingleMember opens the only entry of an in-memory zip archive.
func openSingleMember(data []byte) (io.ReadCloser, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("cannot open zip archive: %w", err)
	}
	switch n := len(zr.File); {
	case n == 0:
		return nil, bossa.ErrEmptyArchive
	case n > 1:
		names := make([]string, 0, n)
		for _, f := range zr.File {
			names = append(names, f.Name)
		}
		return nil, fmt.Errorf("%w: %q", bossa.ErrAmbiguousArchive, names)
	}
	f := zr.File[0]
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open %q from zip archive: %w", f.Name, err)
	}
	return rc, nil
}
