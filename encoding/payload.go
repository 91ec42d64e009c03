package encoding

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

//IsJSONObject reports whether body is UTF-8 JSON with an object at the top level
func IsJSONObject(body []byte) bool {
	if !utf8.Valid(body) || !gjson.ValidBytes(body) {
		return false
	}
	return gjson.ParseBytes(body).IsObject()
}

//IsJSONContentType accepts application/json and application/*+json, parameters ignored
func IsJSONContentType(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}

//Compact strips insignificant whitespace from a JSON document
func Compact(body []byte) []byte {
	return pretty.Ugly(body)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
