package handler

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2021-03-04", time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), true},
		{" 2021-03-04 ", time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), true},
		{"2021-03-04T10:00:00+02:00", time.Date(2021, 3, 4, 8, 0, 0, 0, time.UTC), true},
		{"04/03/2021", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := parseDate(tt.in)
		if ok != tt.ok || !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParsePeriod_OptionalTo(t *testing.T) {
	from, to, err := parsePeriod("2019-01-01", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from.Year() != 2019 || to != nil {
		t.Fatalf("unexpected period %v %v", from, to)
	}

	if _, _, err := parsePeriod("2019-01-01", "soon"); err == nil {
		t.Fatal("expected invalid to date to fail")
	}
}

func TestToProfileUpdate_Social(t *testing.T) {
	u := toProfileUpdate(profileRequest{Status: "Dev", Skills: "Go", LinkedIn: "in/alice", YouTube: "yt/alice"})
	if u.Social.LinkedIn != "in/alice" || u.Social.YouTube != "yt/alice" || u.Social.Twitter != "" {
		t.Fatalf("unexpected social %+v", u.Social)
	}
}
