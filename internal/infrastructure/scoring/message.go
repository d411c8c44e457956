package scoring

import (
	"strings"

	"github.com/tidwall/gjson"
)

const maxErrorBody = 2048

// backendMessage digs a human-readable message out of whatever body an
// error response carried. Non-conforming bodies (proxies, crash pages)
// fall back to the trimmed raw text.
func backendMessage(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if msg := gjson.GetBytes(body, "message").String(); msg != "" {
		return msg
	}
	if msg := gjson.GetBytes(body, "error").String(); msg != "" {
		return msg
	}
	return strings.TrimSpace(string(body))
}
