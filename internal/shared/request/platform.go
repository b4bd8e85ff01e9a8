package request

import "strings"

// ClientType menentukan cara pengiriman token (cookie vs body).
type ClientType string

const (
	ClientWeb    ClientType = "web"
	ClientMobile ClientType = "mobile"
	ClientAPI    ClientType = "api"
)

// ResolveClientType membaca header eksplisit dulu, fallback ke User-Agent.
func ResolveClientType(clientHeader, userAgent string) ClientType {
	switch strings.ToLower(strings.TrimSpace(clientHeader)) {
	case "web":
		return ClientWeb
	case "mobile":
		return ClientMobile
	case "api":
		return ClientAPI
	}

	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "mozilla") || strings.Contains(ua, "chrome") || strings.Contains(ua, "safari") {
		return ClientWeb
	}

	return ClientAPI
}

func IsWebClient(ct ClientType) bool {
	return ct == ClientWeb
}
