package storage

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/portfolio/thumbnails/abc123.png", "abc123"},
		{"https://cdn.example.com/portfolio/thumbnails/abc123", "abc123"},
		{"https://cdn.example.com/portfolio/certificate_logos/a.b.c.webp", "a.b.c"},
		{"https://cdn.example.com/.hidden", ".hidden"},
		{"plain-id", "plain-id"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := PublicIDFromURL(tc.url); got != tc.want {
			t.Errorf("PublicIDFromURL(%q) = %q, esperava %q", tc.url, got, tc.want)
		}
	}
}
