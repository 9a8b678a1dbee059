package mock

import (
	"io"
	"os"
)

// File is an in-memory io.ReadWriteCloser with a single read/write cursor
// shared by Read, Write and Seek, useful as a stand-in for an *os.File in
// streaming tests.
type File struct {
	data   []byte
	name   string
	pos    int64
	closed bool
}

// NewFile returns a File seeded with data.
func NewFile(data []byte, name string) *File {
	return &File{data: append([]byte(nil), data...), name: name}
}

// Bytes returns the file's current contents.
func (f *File) Bytes() []byte {
	return f.data
}

// Name returns the file's name.
func (f *File) Name() string {
	return f.name
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	if f.pos >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += int64(n)
	return n, nil
}

// Write implements io.Writer, appending at the current position.
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	f.data = append(f.data[:f.pos], p...)
	f.pos += int64(len(p))
	return len(p), nil
}

// Close implements io.Closer. Closing twice is a no-op.
func (f *File) Close() error {
	f.closed = true
	return nil
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = f.pos + offset
	case io.SeekEnd:
		newPos = int64(len(f.data)) + offset
	}
	f.pos = newPos
	return f.pos, nil
}

// ErrorFile is an io.ReadWriteCloser whose every operation fails with a
// fixed error.
type ErrorFile struct {
	err error
}

// NewErrorFile returns an ErrorFile that fails Read, Write and Close with err.
func NewErrorFile(err error) *ErrorFile {
	return &ErrorFile{err: err}
}

func (f *ErrorFile) Read([]byte) (int, error)  { return 0, f.err }
func (f *ErrorFile) Write([]byte) (int, error) { return 0, f.err }
func (f *ErrorFile) Close() error              { return f.err }

// NewErrorReadWriteCloser is an alias constructor for ErrorFile kept under the
// name call sites expect when they only care about the Reader/Writer side.
func NewErrorReadWriteCloser(err error) *ErrorFile {
	return NewErrorFile(err)
}

// ErrorWriteCloser fails every Write and Close with a fixed error.
type ErrorWriteCloser struct {
	err error
}

// NewErrorWriteCloser returns a WriteCloser that fails Write and Close with err.
func NewErrorWriteCloser(err error) *ErrorWriteCloser {
	return &ErrorWriteCloser{err: err}
}

func (w *ErrorWriteCloser) Write([]byte) (int, error) { return 0, w.err }
func (w *ErrorWriteCloser) Close() error               { return w.err }

// CloseErrorWriteCloser writes through to an underlying io.Writer
// successfully but always fails Close with a fixed error.
type CloseErrorWriteCloser struct {
	w   io.Writer
	err error
}

// NewCloseErrorWriteCloser wraps w so that Write succeeds normally but
// Close always fails with err.
func NewCloseErrorWriteCloser(w io.Writer, err error) *CloseErrorWriteCloser {
	return &CloseErrorWriteCloser{w: w, err: err}
}

func (w *CloseErrorWriteCloser) Write(p []byte) (int, error) { return w.w.Write(p) }
func (w *CloseErrorWriteCloser) Close() error                 { return w.err }
