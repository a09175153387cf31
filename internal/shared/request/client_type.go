package request

import "strings"

const (
	ClientTypeWeb    = "web"
	ClientTypeMobile = "mobile"
)

// ResolveClientType prefers the explicit X-Client-Type header and falls back
// to a User-Agent sniff. Web clients get their tokens in HttpOnly cookies,
// mobile clients read them from the response body.
func ResolveClientType(header, userAgent string) string {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case ClientTypeWeb:
		return ClientTypeWeb
	case ClientTypeMobile:
		return ClientTypeMobile
	}

	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "mozilla") || strings.Contains(ua, "chrome") || strings.Contains(ua, "safari") {
		return ClientTypeWeb
	}

	return ClientTypeMobile
}

func IsWebClient(clientType string) bool {
	return clientType == ClientTypeWeb
}
