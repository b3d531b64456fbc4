package mimesniff

import (
	"net/http"
)

// Handler wraps next so that responses written without a Content-Type get
// one detected from their first bytes, using the default registry.
func Handler(next http.Handler) http.Handler {
	return Middleware(Default())(next)
}

// Middleware returns a handler decorator detecting missing Content-Type
// headers with det.
//
// A Content-Type set by the wrapped handler is never replaced. Setting the
// header key to a nil slice, or setting "X-Content-Type-Options: nosniff",
// turns detection off for that response. HEAD requests and 204/304
// responses pass through untouched. Informational 1xx statuses other than
// 101 are sent immediately and do not end the header phase.
//
// As with net/http, whether to sniff is decided from the headers present
// when WriteHeader is called, or at the first Write when it is not. A
// Content-Type set after WriteHeader does not stop detection.
func Middleware(det Detector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			sw := &sniffWriter{ResponseWriter: w, det: det}
			defer sw.finish()
			next.ServeHTTP(sw, r)
		})
	}
}

// sniffWriter holds back the status line and up to sniffLen body bytes
// until it can decide on a Content-Type.
type sniffWriter struct {
	http.ResponseWriter
	det Detector

	buf       []byte
	status    int
	committed bool

	// decided reports whether sniff holds the frozen decision
	decided bool
	sniff   bool
}

func (w *sniffWriter) WriteHeader(code int) {
	if w.committed || w.status != 0 {
		return
	}
	if code >= 100 && code < 200 && code != http.StatusSwitchingProtocols {
		w.ResponseWriter.WriteHeader(code)
		return
	}
	w.status = code
	if !w.shouldSniff() {
		w.commit(false)
	}
}

func (w *sniffWriter) Write(p []byte) (int, error) {
	if w.committed {
		return w.ResponseWriter.Write(p)
	}
	if !w.shouldSniff() {
		if err := w.commit(false); err != nil {
			return 0, err
		}
		return w.ResponseWriter.Write(p)
	}

	w.buf = append(w.buf, p...)
	if len(w.buf) >= sniffLen {
		if err := w.commit(true); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Flush sends whatever has been buffered, detecting on a partial window if
// needed, then flushes the underlying writer.
func (w *sniffWriter) Flush() {
	_ = w.commit(len(w.buf) > 0)
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *sniffWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *sniffWriter) finish() {
	_ = w.commit(len(w.buf) > 0)
}

func (w *sniffWriter) shouldSniff() bool {
	if !w.decided {
		w.decided = true
		w.sniff = w.sniffable()
	}
	return w.sniff
}

func (w *sniffWriter) sniffable() bool {
	h := w.Header()
	if _, ok := h["Content-Type"]; ok {
		return false
	}
	if h.Get("X-Content-Type-Options") == "nosniff" {
		return false
	}
	switch w.status {
	case http.StatusNoContent, http.StatusNotModified:
		return false
	}
	return true
}

// commit writes the status line and the buffered body. With sniff set and
// sniffing allowed, the buffered bytes decide the Content-Type.
func (w *sniffWriter) commit(sniff bool) error {
	if w.committed {
		return nil
	}
	w.committed = true

	if sniff && w.shouldSniff() {
		w.Header().Set("Content-Type", w.det.Detect(w.buf))
	}
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
	if len(w.buf) == 0 {
		return nil
	}
	buf := w.buf
	w.buf = nil
	_, err := w.ResponseWriter.Write(buf)
	return err
}
