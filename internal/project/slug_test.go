package project

import (
	"testing"
	"unicode"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple name", "My Blog", "my-blog"},
		{"Already a slug", "my-blog", "my-blog"},
		{"Uppercase", "SHOP", "shop"},
		{"Inner whitespace run", "a   b", "a-b"},
		{"Leading and trailing spaces", "  Hello World  ", "hello-world"},
		{"Punctuation", "what's up?", "what-s-up"},
		{"Doubled separators collapse", "a--b", "a-b"},
		{"Underscores survive", "my_blog", "my_blog"},
		{"Non-ascii replaced", "café au lait", "caf-au-lait"},
		{"Digits kept", "web 2 go", "web-2-go"},
		{"Nothing usable", "???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"My Blog", "a--b", "  x  ", "shop-api", "w h a t", "UPPER_case"}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSlugifyCharset(t *testing.T) {
	inputs := []string{"My Blog!", "--edge--", "Ünïcode Ñame", "tabs\tand\nnewlines"}
	for _, in := range inputs {
		slug := Slugify(in)
		if len(slug) > 0 && (slug[0] == '-' || slug[len(slug)-1] == '-') {
			t.Errorf("Slugify(%q) = %q has leading/trailing separator", in, slug)
		}
		prev := rune(0)
		for _, r := range slug {
			if !(unicode.IsLower(r) || unicode.IsDigit(r) || r == '-' || r == '_') {
				t.Errorf("Slugify(%q) = %q contains %q", in, slug, r)
			}
			if r == '-' && prev == '-' {
				t.Errorf("Slugify(%q) = %q has doubled separator", in, slug)
			}
			prev = r
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		slug     string
		expected bool
	}{
		{"my-blog", true},
		{"shop_api", true},
		{"shop-api2", true},
		{"", false},
		{"My-Blog", false},
		{"a--b", false},
		{"-leading", false},
		{"trailing-", false},
		{"with space", false},
	}

	for _, tt := range tests {
		if got := IsValidSlug(tt.slug); got != tt.expected {
			t.Errorf("IsValidSlug(%q) = %v, want %v", tt.slug, got, tt.expected)
		}
	}
}
