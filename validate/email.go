package validate

import (
	"regexp"
	"sync"
)

var (
	emailRegexOnce     sync.Once
	emailRegexCompiled *regexp.Regexp
)

// emailRun matches one non-space/non-@ run. \s alone is ASCII only, so
// vertical tab, NEL, the Unicode separators and BOM are listed as well.
const emailRun = `[^@\s\v\p{Z}\x{85}\x{FEFF}]+`

// emailRegex returns a compiled, cached regular expression for basic email
// validation: a non-space/non-@ local part, '@', a non-space/non-@ domain, a
// dot and a TLD.
func emailRegex() *regexp.Regexp {
	emailRegexOnce.Do(func() {
		emailRegexCompiled = regexp.MustCompile(
			`^` + emailRun + `@` + emailRun + `\.` + emailRun + `$`,
		)
	})

	return emailRegexCompiled
}

// IsEmail reports whether s has the shape local-part@domain.tld.
func IsEmail(s string) bool {
	return emailRegex().MatchString(s)
}
