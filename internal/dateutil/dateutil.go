// Package dateutil parses article publish dates.
//
// Article dates are written as YYYY-MM-DD and interpreted as midnight at a
// fixed +09:00 offset. Documents without a date sort at the Unix epoch.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateFormat indicates a date not written as YYYY-MM-DD.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ArticleLayout is the time layout of article dates.
const ArticleLayout = time.DateOnly

// SiteOffset is the fixed offset article dates are interpreted in.
var SiteOffset = time.FixedZone("JST", 9*60*60)

// Epoch is the sentinel date of documents that carry no publish date.
var Epoch = time.Unix(0, 0).UTC()

// ParseArticleDate parses s as YYYY-MM-DD at midnight in SiteOffset.
func ParseArticleDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ArticleLayout, s, SiteOffset)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDateFormat, s)
	}
	return t, nil
}
