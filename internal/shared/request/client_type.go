package request

import "strings"

const (
	ClientWeb    = "WEB"
	ClientMobile = "MOBILE"
	ClientAPI    = "API"
)

const HeaderClientType = "X-Client-Type"

// ResolveClientType trusts an explicit X-Client-Type and otherwise guesses
// from the User-Agent. Browsers get cookies, everything else gets tokens only.
func ResolveClientType(header, userAgent string) string {
	switch strings.ToUpper(strings.TrimSpace(header)) {
	case ClientWeb:
		return ClientWeb
	case ClientMobile:
		return ClientMobile
	case ClientAPI:
		return ClientAPI
	}

	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "okhttp"), strings.Contains(ua, "dart"), strings.Contains(ua, "cfnetwork"):
		return ClientMobile
	case strings.Contains(ua, "mozilla"):
		return ClientWeb
	default:
		return ClientAPI
	}
}

func IsWebClient(clientType string) bool {
	return clientType == ClientWeb
}
