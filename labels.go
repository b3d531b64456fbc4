package mimesniff

import (
	"mime"
	"strings"
)

// DefaultContentType is returned when no signature matches.
const DefaultContentType = "application/octet-stream"

// Content types produced by the default registry.
const (
	MIMETypeTextHTML              = "text/html; charset=utf-8"
	MIMETypeTextXML               = "text/xml; charset=utf-8"
	MIMETypeTextPlain             = "text/plain; charset=utf-8"
	MIMETypeTextPlainUTF16BE      = "text/plain; charset=utf-16be"
	MIMETypeTextPlainUTF16LE      = "text/plain; charset=utf-16le"
	MIMETypeApplicationPDF        = "application/pdf"
	MIMETypeApplicationPostScript = "application/postscript"
	MIMETypeImageIcon             = "image/x-icon"
	MIMETypeImageBMP              = "image/bmp"
	MIMETypeImageGIF              = "image/gif"
	MIMETypeImageWebP             = "image/webp"
	MIMETypeImagePNG              = "image/png"
	MIMETypeImageJPEG             = "image/jpeg"
	MIMETypeAudioAIFF             = "audio/aiff"
	MIMETypeAudioMPEG             = "audio/mpeg"
	MIMETypeApplicationOgg        = "application/ogg"
	MIMETypeAudioMIDI             = "audio/midi"
	MIMETypeVideoAVI              = "video/avi"
	MIMETypeAudioWave             = "audio/wave"
	MIMETypeVideoMP4              = "video/mp4"
	MIMETypeVideoWebM             = "video/webm"
	MIMETypeFontEOT               = "application/vnd.ms-fontobject"
	MIMETypeFontTTF               = "font/ttf"
	MIMETypeFontOTF               = "font/otf"
	MIMETypeFontCollection        = "font/collection"
	MIMETypeFontWOFF              = "font/woff"
	MIMETypeFontWOFF2             = "font/woff2"
	MIMETypeApplicationGzip       = "application/x-gzip"
	MIMETypeApplicationZip        = "application/zip"
	MIMETypeApplicationRAR        = "application/x-rar-compressed"
	MIMETypeApplicationWasm       = "application/wasm"
)

// Conventional extensions keyed by base type.
var extensionForBaseType = map[string]string{
	"text/html":                     ".html",
	"text/xml":                      ".xml",
	"text/plain":                    ".txt",
	"application/pdf":               ".pdf",
	"application/postscript":        ".ps",
	"image/x-icon":                  ".ico",
	"image/bmp":                     ".bmp",
	"image/gif":                     ".gif",
	"image/webp":                    ".webp",
	"image/png":                     ".png",
	"image/jpeg":                    ".jpg",
	"audio/aiff":                    ".aiff",
	"audio/mpeg":                    ".mp3",
	"application/ogg":               ".ogg",
	"audio/midi":                    ".mid",
	"video/avi":                     ".avi",
	"audio/wave":                    ".wav",
	"video/mp4":                     ".mp4",
	"video/webm":                    ".webm",
	"application/vnd.ms-fontobject": ".eot",
	"font/ttf":                      ".ttf",
	"font/otf":                      ".otf",
	"font/collection":               ".ttc",
	"font/woff":                     ".woff",
	"font/woff2":                    ".woff2",
	"application/x-gzip":            ".gz",
	"application/zip":               ".zip",
	"application/x-rar-compressed":  ".rar",
	"application/wasm":              ".wasm",
}

// BaseType returns contentType without parameters, lower-cased.
// "text/plain; charset=utf-8" becomes "text/plain".
func BaseType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// Charset returns the charset parameter of contentType, or "" if it has none.
func Charset(contentType string) string {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(params["charset"])
}

// IsText returns true if the content type is textual
func IsText(contentType string) bool {
	base := BaseType(contentType)
	return strings.HasPrefix(base, "text/") ||
		base == "application/json" ||
		base == "application/xml" ||
		base == "application/javascript" ||
		base == "application/x-javascript"
}

// IsBinary returns true if the content type is typically binary (not text)
func IsBinary(contentType string) bool {
	return !IsText(contentType)
}

// IsExecutable returns true if the content type indicates an executable
func IsExecutable(contentType string) bool {
	switch BaseType(contentType) {
	case "application/wasm",
		"application/x-msdownload",
		"application/x-msdos-program",
		"application/x-executable",
		"application/x-mach-binary",
		"application/x-sharedlib",
		"application/x-dosexec":
		return true
	}
	return false
}

// Category returns a human-readable category for a content type
func Category(contentType string) string {
	base := BaseType(contentType)
	switch {
	case strings.HasPrefix(base, "image/"):
		return "image"
	case strings.HasPrefix(base, "video/"):
		return "video"
	case strings.HasPrefix(base, "audio/"), base == MIMETypeApplicationOgg:
		return "audio"
	case strings.HasPrefix(base, "text/"):
		return "text"
	case strings.HasPrefix(base, "font/"), base == MIMETypeFontEOT:
		return "font"
	case strings.Contains(base, "zip") || strings.Contains(base, "rar") ||
		strings.Contains(base, "tar") || strings.Contains(base, "7z"):
		return "archive"
	case base == MIMETypeApplicationPDF || base == MIMETypeApplicationPostScript:
		return "document"
	case IsExecutable(base):
		return "executable"
	default:
		return "other"
	}
}

// ExtensionFor returns a suitable file extension for a content type
func ExtensionFor(contentType string) string {
	base := BaseType(contentType)
	if ext, ok := extensionForBaseType[base]; ok {
		return ext
	}

	// For unknown types, try to get an extension from the mime package
	exts, err := mime.ExtensionsByType(base)
	if err == nil && len(exts) > 0 {
		return exts[0]
	}

	// Fall back to .bin for binary data
	return ".bin"
}
