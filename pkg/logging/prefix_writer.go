package logging

import (
	"bytes"
	"io"
	"sync"
)

// PrefixWriter prepends a prefix to every complete line written through it. A partial line
// is held back until its newline arrives.
type PrefixWriter struct {
	mu      sync.Mutex
	prefix  []byte
	writer  io.Writer
	pending bytes.Buffer
}

func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: []byte(prefix), writer: w}
}

func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	pw.pending.Write(p)
	for {
		i := bytes.IndexByte(pw.pending.Bytes(), '\n')
		if i < 0 {
			break
		}
		if err := pw.emit(pw.pending.Next(i + 1)); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (pw *PrefixWriter) emit(line []byte) error {
	buf := make([]byte, 0, len(pw.prefix)+len(line))
	buf = append(buf, pw.prefix...)
	buf = append(buf, line...)
	_, err := pw.writer.Write(buf)
	return err
}
