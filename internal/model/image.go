package model

import (
	"net/url"
	"strings"
)

const DefaultImageDomain = "https://cdn.dummyjson.com"

// ImagePolicy is the allow-list of origins images may be served from.
type ImagePolicy struct {
	origins map[string]bool
}

// NewImagePolicy accepts origins such as "https://cdn.dummyjson.com" or bare hosts.
func NewImagePolicy(domains ...string) ImagePolicy {
	p := ImagePolicy{origins: map[string]bool{}}
	for _, d := range domains {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if !strings.Contains(d, "://") {
			d = "https://" + d
		}
		u, err := url.Parse(d)
		if err != nil || u.Host == "" {
			continue
		}
		p.origins[origin(u)] = true
	}
	return p
}

func origin(u *url.URL) string {
	return strings.ToLower(u.Scheme + "://" + u.Host)
}

func (p ImagePolicy) Allowed(image string) bool {
	u, err := url.Parse(image)
	if err != nil || u.Host == "" {
		return false
	}
	return p.origins[origin(u)]
}

// SanitizeHotel drops an image served from an origin outside the allow-list.
func (p ImagePolicy) SanitizeHotel(h Hotel) (Hotel, bool) {
	if h.Image == "" || p.Allowed(h.Image) {
		return h, false
	}
	h.Image = ""
	return h, true
}

func (p ImagePolicy) SanitizeFlight(f Flight) (Flight, bool) {
	if f.Image == "" || p.Allowed(f.Image) {
		return f, false
	}
	f.Image = ""
	return f, true
}
