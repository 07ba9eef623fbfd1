package auth

import "strings"

const (
	clientWeb    = "WEB"
	clientMobile = "MOBILE"
	clientAPI    = "API"
)

// resolveClientType prefers the X-Client-Type header and falls back to
// sniffing the user agent. Browsers get the token as a cookie.
func resolveClientType(header, userAgent string) string {
	switch strings.ToUpper(strings.TrimSpace(header)) {
	case clientWeb:
		return clientWeb
	case clientMobile:
		return clientMobile
	case clientAPI:
		return clientAPI
	}
	if strings.Contains(userAgent, "Mozilla") {
		return clientWeb
	}
	return clientAPI
}
