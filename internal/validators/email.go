package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address's domain resolves to at least
// one MX or A record. Format validation happens earlier, at binding.
func IsEmailDomainValid(email string) bool {
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
