package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans each write out to all of its writers. A failing
// writer does not stop the others, its error is collected and returned.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w == nil {
			continue
		}
		cw.Writers = append(cw.Writers, w)
	}
	return cw
}

// Write reports the length of p when at least one writer took all of it.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	written := false
	for _, w := range cw.Writers {
		n, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if n == len(p) {
			written = true
		}
	}
	if !written && err == nil && len(cw.Writers) > 0 {
		err = io.ErrShortWrite
	}
	if !written {
		return 0, err
	}
	return len(p), err
}
