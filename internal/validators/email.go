package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address has a resolvable domain.
// Best-effort: a DNS hiccup rejects the address, which is acceptable
// for registration and contact forms.
func IsEmailDomainValid(email string) bool {
	email = strings.TrimSpace(email)

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsAny(domain, " \t") {
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
