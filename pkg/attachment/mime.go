package attachment

import (
	"mime"
	"net/http"
	"path"
	"strings"
)

// MIMEOctetStream is used when no better content type can be determined.
const MIMEOctetStream = "application/octet-stream"

// mimeDetectionBytes is the prefix size http.DetectContentType inspects.
const mimeDetectionBytes = 512

// DetectMIME determines the content type of a file.
// The extension of filename wins when it is registered; otherwise the
// leading bytes of data are sniffed.
func DetectMIME(filename string, data []byte) string {
	if ext := path.Ext(filename); ext != "" {
		if ct := mime.TypeByExtension(strings.ToLower(ext)); ct != "" {
			return normalizeMIME(ct)
		}
	}
	if len(data) == 0 {
		return MIMEOctetStream
	}
	if len(data) > mimeDetectionBytes {
		data = data[:mimeDetectionBytes]
	}
	return normalizeMIME(http.DetectContentType(data))
}

// normalizeMIME drops parameters except for text types, where the charset matters.
func normalizeMIME(ct string) string {
	base, params, _ := strings.Cut(ct, ";")
	base = strings.TrimSpace(strings.ToLower(base))
	if strings.HasPrefix(base, "text/") && strings.TrimSpace(params) != "" {
		return base + "; " + strings.TrimSpace(params)
	}
	return base
}
