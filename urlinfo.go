package llmsdocs

import (
	"net/url"
	"strings"
)

// compoundTLDs are two-label public suffixes that change which label is
// the base domain. The list is a fixed table; swapping in a full public
// suffix database would change documented parsing behavior.
var compoundTLDs = map[string]bool{
	"co.uk":  true,
	"com.au": true,
	"co.nz":  true,
	"co.jp":  true,
	"com.br": true,
	"co.in":  true,
	"org.uk": true,
	"net.au": true,
}

// URLInfo holds the normalized parts of a user-supplied URL.
type URLInfo struct {
	Protocol     string `json:"protocol"`   // scheme without "://", e.g. "https"
	Hostname     string `json:"hostname"`   // host exactly as provided, lowercased
	BaseDomain   string `json:"baseDomain"` // registrable label, e.g. "example"
	TLD          string `json:"tld"`        // "com" or a compound like "co.uk"
	FullDomain   string `json:"fullDomain"` // baseDomain + "." + TLD
	HasSubdomain bool   `json:"hasSubdomain"`
	Subdomain    string `json:"subdomain"` // "" when absent or "www"
}

// ParseURLInfo canonicalizes a raw user string into its domain parts.
// Input may lack a scheme and may carry a path or query. Returns an
// EINVALID error if the string cannot be parsed as a URL even after
// prefixing "https://".
func ParseURLInfo(raw string) (*URLInfo, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, Errorf(EINVALID, "url required")
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return nil, Errorf(EINVALID, "invalid url %q", raw)
	}

	host := strings.ToLower(u.Hostname())
	labels := strings.Split(host, ".")
	if len(labels) < 2 || labels[len(labels)-1] == "" || labels[0] == "" {
		return nil, Errorf(EINVALID, "invalid domain %q", host)
	}

	info := &URLInfo{
		Protocol: u.Scheme,
		Hostname: host,
	}

	// When the last two labels form a known compound TLD, the
	// third-from-last label is the base domain.
	lastTwo := strings.Join(labels[len(labels)-2:], ".")
	if compoundTLDs[lastTwo] && len(labels) >= 3 {
		info.TLD = lastTwo
		info.BaseDomain = labels[len(labels)-3]
		info.Subdomain = strings.Join(labels[:len(labels)-3], ".")
	} else {
		info.TLD = labels[len(labels)-1]
		info.BaseDomain = labels[len(labels)-2]
		info.Subdomain = strings.Join(labels[:len(labels)-2], ".")
	}

	info.FullDomain = info.BaseDomain + "." + info.TLD

	// www is treated as no subdomain.
	if info.Subdomain == "www" {
		info.Subdomain = ""
	}
	info.HasSubdomain = info.Subdomain != ""

	return info, nil
}

// BaseURL returns the scheme+host form of the parsed input,
// e.g. "https://docs.example.com".
func (i *URLInfo) BaseURL() string {
	return i.Protocol + "://" + i.Hostname
}

// FullDomainURL returns the scheme+registrable-domain form,
// e.g. "https://example.com".
func (i *URLInfo) FullDomainURL() string {
	return i.Protocol + "://" + i.FullDomain
}
