package dispatch

import (
	"bytes"
	"encoding/json"
	"mime"
	"strings"

	"github.com/bytedance/sonic"
)

// renderBody turns a response body into display text. JSON bodies (by
// content type) are decoded first: a JSON string is shown as-is, other values
// are re-indented with two spaces. Falsy data (empty text, null, false, 0,
// "") reports ok=false and nothing is shown.
func renderBody(contentType string, body []byte) (text string, ok bool) {
	if isJSONContentType(contentType) {
		var data any
		if err := sonic.Unmarshal(body, &data); err == nil {
			switch v := data.(type) {
			case nil:
				return "", false
			case bool:
				if !v {
					return "", false
				}
			case float64:
				if v == 0 {
					return "", false
				}
			case string:
				return v, v != ""
			}
			// Indent the raw document: keys keep the server's order and
			// numbers and escapes keep the server's spelling.
			var buf bytes.Buffer
			if err := json.Indent(&buf, bytes.TrimSpace(body), "", "  "); err == nil {
				return buf.String(), true
			}
		}
	}
	text = string(body)
	return text, text != ""
}

func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
