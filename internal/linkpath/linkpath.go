// Package linkpath computes relative hyperlinks between site pages.
package linkpath

import (
	"path"
	"strings"
)

// Resolve returns the shortest relative path from the page at from to the
// page at target. Both are slash-separated site-relative paths.
//
// A self-link yields the file name of from. Otherwise the common ancestor
// directory is found segment by segment; the segments of from below it
// (file name included) minus one give the number of "../" climbs, followed
// by the segments of target below the ancestor.
func Resolve(target, from string) string {
	target = path.Clean(target)
	from = path.Clean(from)
	if target == from {
		return path.Base(from)
	}

	ts := split(target)
	fs := split(from)

	// A path is its own ancestor, so the comparison covers full paths too.
	common := 0
	for common < len(ts) && common < len(fs) && ts[common] == fs[common] {
		common++
	}

	climb := len(fs) - common - 1
	if climb < 0 {
		climb = 0
	}
	rest := ts[common:]
	return strings.Repeat("../", climb) + strings.Join(rest, "/")
}

func split(p string) []string {
	if p == "." || p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
