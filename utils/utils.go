package utils

import "regexp"

var urlRe = regexp.MustCompile(
	`https?://(www\.)?[-a-zA-Z0-9@:%._\+~#=]{2,256}\.[a-z]{2,4}\b([-a-zA-Z0-9@:%_\+.~#?&//=]*)`,
)

// IsURL reports whether the given string looks like an http(s) link.
func IsURL(url string) bool {
	return urlRe.MatchString(url)
}
