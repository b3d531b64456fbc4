package mimesniff

// sniffLen is the number of leading bytes the algorithm looks at.
const sniffLen = 512

// Detector returns the content type of data. [*Registry] and
// [*CachedDetector] implement it.
type Detector interface {
	Detect(data []byte) string
}

var (
	_ Detector = (*Registry)(nil)
	_ Detector = (*CachedDetector)(nil)
)

// DetectContentType implements the algorithm described at
// https://mimesniff.spec.whatwg.org/ to determine the content type of data.
// It considers at most the first 512 bytes and always returns a valid MIME
// type, falling back to "application/octet-stream".
//
// Empty input yields "text/plain; charset=utf-8": the plain-text rule
// accepts a remainder with no disqualifying bytes, and zero bytes has none.
func DetectContentType(data []byte) string {
	return Default().Detect(data)
}

// Detect runs the registry's signatures against data in priority order and
// returns the first label produced, or DefaultContentType.
func (r *Registry) Detect(data []byte) string {
	data = window(data)
	firstNonWS := skipWS(data)

	for _, sig := range r.sigs {
		if ct := sig.match(data, firstNonWS); ct != "" {
			return ct
		}
	}

	return DefaultContentType
}

// window truncates data to the sniffing window.
func window(data []byte) []byte {
	if len(data) > sniffLen {
		return data[:sniffLen]
	}
	return data
}

// skipWS returns the index of the first non-whitespace byte in data, or
// len(data) when it is all whitespace.
func skipWS(data []byte) int {
	i := 0
	for i < len(data) && isWS(data[i]) {
		i++
	}
	return i
}

// isWS reports whether b is a whitespace byte (0xWS) as defined in
// https://mimesniff.spec.whatwg.org/#terminology.
func isWS(b byte) bool {
	switch b {
	case '\t', '\n', '\x0c', '\r', ' ':
		return true
	}
	return false
}

// isTT reports whether b is a tag-terminating byte (0xTT) as defined in
// https://mimesniff.spec.whatwg.org/#terminology.
func isTT(b byte) bool {
	switch b {
	case ' ', '>':
		return true
	}
	return false
}
