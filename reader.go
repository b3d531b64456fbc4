package mimesniff

import (
	"bytes"
	"errors"
	"io"
)

// DetectReader reads the sniffing window from r and detects its content
// type with the default registry. Short input is not an error.
func DetectReader(r io.Reader) (string, error) {
	return Default().DetectReader(r)
}

// Peek detects the content type of r with the default registry and returns
// a reader yielding the full stream, including the bytes consumed for
// detection.
func Peek(r io.Reader) (string, io.Reader, error) {
	return Default().Peek(r)
}

// DetectReader is the registry-specific form of [DetectReader].
func (reg *Registry) DetectReader(r io.Reader) (string, error) {
	header, err := readHeader(r)
	if err != nil {
		return "", err
	}
	return reg.Detect(header), nil
}

// Peek is the registry-specific form of [Peek].
func (reg *Registry) Peek(r io.Reader) (string, io.Reader, error) {
	header, err := readHeader(r)
	if err != nil {
		return "", nil, err
	}

	// Stitch the header back with the rest of the stream
	return reg.Detect(header), io.MultiReader(bytes.NewReader(header), r), nil
}

// readHeader reads up to sniffLen bytes from r.
func readHeader(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, &DetectError{Op: "read", Err: ErrNilReader}
	}

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, &DetectError{Op: "read", Err: err}
	}
	return header[:n], nil
}
