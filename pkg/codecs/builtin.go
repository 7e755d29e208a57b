package codecs

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"html"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy is safe for concurrent use once built
var strictPolicy = bluemonday.StrictPolicy()

var builtins = map[string]Codec{
	"b64": {
		Description: "standard base64 encoding",
		Transform: func(s string) string {
			return base64.StdEncoding.EncodeToString([]byte(s))
		},
	},
	"b64url": {
		Description: "URL-safe base64 encoding",
		Transform: func(s string) string {
			return base64.URLEncoding.EncodeToString([]byte(s))
		},
	},
	"hex": {
		Description: "lowercase hexadecimal encoding",
		Transform: func(s string) string {
			return hex.EncodeToString([]byte(s))
		},
	},
	"url": {
		Description: "URL query escaping",
		Transform:   url.QueryEscape,
	},
	"upper": {
		Description: "upper case",
		Transform:   strings.ToUpper,
	},
	"lower": {
		Description: "lower case",
		Transform:   strings.ToLower,
	},
	"trim": {
		Description: "strip leading and trailing whitespace",
		Transform:   strings.TrimSpace,
	},
	"sha256": {
		Description: "hex SHA-256 digest",
		Transform: func(s string) string {
			sum := sha256.Sum256([]byte(s))
			return hex.EncodeToString(sum[:])
		},
	},
	"html": {
		Description: "HTML entity escaping",
		Transform:   html.EscapeString,
	},
	"strip_html": {
		Description: "remove all HTML markup",
		Transform:   strictPolicy.Sanitize,
	},
	"uuid": {
		Description: "name-based UUIDv5 in the URL namespace",
		Transform: func(s string) string {
			return uuid.NewSHA1(uuid.NameSpaceURL, []byte(s)).String()
		},
	},
	"shell": {
		Description: "POSIX shell single quoting",
		Transform: func(s string) string {
			return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
		},
	},
}
