package text

import (
	"compress/gzip"
	"io"
	"os"
)

// appendFile opens path in append mode, hands the writer to fn and closes
// the file on every return path. When compress is set, writes go through
// a gzip stream appended as a complete member to the same file. One call
// writes one complete record; no handle outlives the call.
func appendFile(path string, compress bool, fn func(io.Writer) error) error {

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(f)
		w = gz
	}

	werr := fn(w)

	if gz != nil {
		if err := gz.Close(); werr == nil {
			werr = err
		}
	}
	if err := f.Close(); werr == nil {
		werr = err
	}

	return werr
}

// appendString appends a single plain-text record to path.
func appendString(path, s string) error {
	return appendFile(path, false, func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}
