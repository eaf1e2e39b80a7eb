package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseArticleDate(t *testing.T) {
	t.Parallel()

	got, err := ParseArticleDate("2020-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2020, 3, 3, 15, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseArticleDate() = %v, want %v", got, want)
	}
	if _, offset := got.Zone(); offset != 9*3600 {
		t.Errorf("offset = %d, want %d", offset, 9*3600)
	}

	for _, bad := range []string{"2020/03/04", "20-03-04", "2020-13-01", "", "2020-03-04T00:00:00"} {
		if _, err := ParseArticleDate(bad); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("ParseArticleDate(%q) error = %v, want ErrInvalidDateFormat", bad, err)
		}
	}
}

func TestEpochSortsFirst(t *testing.T) {
	t.Parallel()

	d, err := ParseArticleDate("1971-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if !Epoch.Before(d) {
		t.Errorf("Epoch %v should sort before %v", Epoch, d)
	}
}
