// Package mimesniff determines the content type of data by inspecting at most
// its first 512 bytes, following the WHATWG MIME Sniffing Standard as used for
// HTTP response bodies.
//
// Detection always succeeds: it returns a MIME label such as "image/png" or
// "text/html; charset=utf-8", falling back to "application/octet-stream" when
// the data looks binary and nothing else matched.
//
// # Quick Start
//
//	ct := mimesniff.DetectContentType(data)
//
// Detecting from a stream without losing the consumed bytes:
//
//	ct, r, err := mimesniff.Peek(file)
//	if err != nil {
//	    return err
//	}
//	io.Copy(dst, r) // r replays the header
//
// # Rules
//
// Signatures are tried in a fixed order and the first match wins. Rule kinds:
//
//   - Exact: a literal byte prefix
//   - Masked: a prefix compared under a bit mask, optionally after leading whitespace
//   - HTML tag: a case-insensitive tag name followed by a space or '>'
//   - MP4: an ISO base media "ftyp" box carrying an "mp4" brand
//   - Plain text: the fallback, matching when no binary byte is present
//
// The default table is built once and shared. Custom tables can be assembled
// with [NewRegistry]; the plain-text fallback, if present, must come last.
//
//	reg, err := mimesniff.NewRegistry(
//	    mimesniff.Exact([]byte("#!"), "text/x-shellscript"),
//	    mimesniff.PlainText(),
//	)
//
// # HTTP
//
// [Handler] and [Middleware] set a missing Content-Type from the first bytes
// written by the wrapped handler. An explicit header, an explicitly nil
// Content-Type entry, or "X-Content-Type-Options: nosniff" disables sniffing.
//
// # Caching
//
// [CachedDetector] memoizes results keyed on an xxhash fingerprint of the
// sniffing window. It is safe for concurrent use.
//
//	det := mimesniff.NewCachedDetector(nil, 1024)
//	ct := det.Detect(data)
//	fmt.Println(det.Stats().HitRate)
//
// # Configuration
//
// [GetConfig] loads settings from BEAVER_MIMESNIFF_* environment variables:
//
//	BEAVER_MIMESNIFF_CACHE_SIZE=1024
//	BEAVER_MIMESNIFF_WORKERS=4
//	BEAVER_MIMESNIFF_INCLUDE=**.png
//	BEAVER_MIMESNIFF_LOG_LEVEL=debug
package mimesniff
