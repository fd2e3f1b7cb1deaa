// Package chartver resolves the effective chart version for packaging.
//
// Versions ending in "-SNAPSHOT" denote unreleased builds; when timestamping
// is enabled the SNAPSHOT literal is replaced with a wall-clock timestamp so
// every build publishes a distinct, ordered version.
package chartver

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DefaultTimestampFormat is the pattern used when none is configured.
const DefaultTimestampFormat = "yyyyMMddHHmmss"

// SnapshotSuffix marks an unreleased version. Matching is case-sensitive.
const SnapshotSuffix = "-SNAPSHOT"

// ErrBadFormat indicates a timestamp pattern that cannot be compiled.
var ErrBadFormat = errors.New("invalid timestamp format")

// Resolver computes the effective chart version once per invocation. Create
// instances with [NewResolver]; construction compiles the timestamp format so
// malformed patterns fail up front instead of at render time.
type Resolver struct {
	version             string
	layout              string
	timestampOnSnapshot bool
}

// NewResolver creates a [Resolver]. An empty version means no version is
// configured and [Resolver.Resolve] returns "" (the packaging tool then uses
// the chart's own metadata version). An empty timestampFormat uses
// [DefaultTimestampFormat].
func NewResolver(version string, timestampOnSnapshot bool, timestampFormat string) (*Resolver, error) {
	if timestampFormat == "" {
		timestampFormat = DefaultTimestampFormat
	}

	layout, err := CompileFormat(timestampFormat)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		version:             version,
		layout:              layout,
		timestampOnSnapshot: timestampOnSnapshot,
	}, nil
}

// Resolve returns the effective version for the given wall-clock time. When
// timestamping applies, every SNAPSHOT literal is replaced; the leading
// "-" separator stays, keeping the result a valid semver prerelease.
func (r *Resolver) Resolve(now time.Time) string {
	if r.version == "" {
		return ""
	}

	if r.timestampOnSnapshot && strings.HasSuffix(r.version, SnapshotSuffix) {
		return strings.ReplaceAll(r.version, "SNAPSHOT", now.Format(r.layout))
	}

	return r.version
}

// CompileFormat compiles a date pattern in the conventional build-tool syntax
// (yyyy, MM, dd, HH, mm, ss) to a Go time layout. Unknown pattern letters and
// digit literals are an error, since both would silently corrupt the output.
func CompileFormat(pattern string) (string, error) {
	var b strings.Builder

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		if !unicode.IsLetter(r) {
			if unicode.IsDigit(r) {
				return "", fmt.Errorf("%w: %q: literal digit at position %d", ErrBadFormat, pattern, i)
			}

			b.WriteRune(r)
			i++

			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}

		part, err := layoutPart(r, n)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrBadFormat, pattern, err)
		}

		b.WriteString(part)
		i += n
	}

	return b.String(), nil
}

func layoutPart(r rune, n int) (string, error) {
	switch {
	case r == 'y' && n == 4:
		return "2006", nil
	case r == 'y' && n == 2:
		return "06", nil
	case r == 'M' && n == 2:
		return "01", nil
	case r == 'd' && n == 2:
		return "02", nil
	case r == 'H' && n == 2:
		return "15", nil
	case r == 'm' && n == 2:
		return "04", nil
	case r == 's' && n == 2:
		return "05", nil
	}

	return "", fmt.Errorf("unsupported pattern token %q", strings.Repeat(string(r), n))
}
