package stringutil

import "net/url"

// IsURL reports whether s parses as a URL with both a scheme and a
// host. The scheme itself is not restricted, so https, http and other
// protocols all pass; scheme-only strings like "http://" and bare
// domains without a scheme do not.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
