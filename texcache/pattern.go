package texcache

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/eak1mov/go-icostiles/tile"
)

var ErrInvalidPattern = errors.New("texcache: invalid file pattern")

const namePlaceholder = "{name}"

func validatePattern(pattern string) error {
	if strings.Count(pattern, namePlaceholder) != 1 {
		return fmt.Errorf("%w: placeholder %v must appear exactly once", ErrInvalidPattern, namePlaceholder)
	}
	return nil
}

func formatPattern(pattern string, name tile.Name) string {
	return strings.Replace(pattern, namePlaceholder, string(name), 1)
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	regexPattern := regexp.QuoteMeta(pattern)
	regexPattern = strings.Replace(regexPattern, regexp.QuoteMeta(namePlaceholder), `(?P<name>[^/\\]+)`, 1)
	pathRegexp, err := regexp.Compile("^" + regexPattern + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return pathRegexp, nil
}
