package cache

import (
	"strings"
	"testing"

	"adcopy/config"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"simple", "https://vigoshop.si/izdelek/kamera", "https://vigoshop.si/izdelek/kamera"},
		{"utm and fragment", "https://vigoshop.si/izdelek/kamera/?utm_source=fb#reviews", "https://vigoshop.si/izdelek/kamera"},
		{"uppercase host", "HTTPS://VigoShop.SI/", "https://vigoshop.si"},
		{"tracking params", "https://vigoshop.si/?fbclid=XYZ&gclid=ABC&utm_medium=1", "https://vigoshop.si"},
		{"keeps other params", "https://vigoshop.si/p?variant=2&utm_campaign=x", "https://vigoshop.si/p?variant=2"},
		{"empty", "   ", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := normalizeURL(c.url); got != c.want {
				t.Fatalf("normalizeURL(%q) = %q; want %q", c.url, got, c.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	a := Key("https://vigoshop.si/izdelek/kamera/?utm_source=fb")
	b := Key("https://VIGOSHOP.si/izdelek/kamera")
	if a != b {
		t.Fatalf("equivalent URLs should share a key: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, config.ScrapeCacheKeyPrefix) {
		t.Fatalf("key %q missing prefix", a)
	}
	if a == Key("https://vigoshop.si/izdelek/ure") {
		t.Fatalf("different products should not share a key")
	}
}
