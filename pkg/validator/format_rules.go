package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// checkURL accepts absolute URLs with a scheme and a host.
func checkURL(value any, _, _ map[string]any) (bool, error) {
	if isAbsent(value) || value == "" {
		return true, nil
	}
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("%w: url rule needs a string, got %T", ErrUnsupportedValue, value)
	}
	if strings.TrimSpace(s) == "" {
		return false, nil
	}

	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false, nil
	}

	// Must have a scheme and host
	return u.Scheme != "" && u.Host != "", nil
}

// checkEmail accepts a bare address (no display name) whose domain has at least
// one dot and no empty labels.
func checkEmail(value any, _, _ map[string]any) (bool, error) {
	if isAbsent(value) || value == "" {
		return true, nil
	}
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("%w: email rule needs a string, got %T", ErrUnsupportedValue, value)
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != strings.TrimSpace(s) {
		return false, nil
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false, nil
	}
	if !strings.Contains(domain, ".") {
		return false, nil
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false, nil
		}
	}
	return true, nil
}
