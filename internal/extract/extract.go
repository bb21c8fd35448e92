package extract

import (
	"regexp"
	"sort"
	"strings"
)

// emailPattern matches the standard local-part @ domain-with-extension
// shape. Shared by all Extractors; compiled once at package init.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// Extractor scans text for emails and subdomains scoped to one domain.
// It is safe for concurrent use; all state is read-only after New.
type Extractor struct {
	// domain is the lowercased target domain.
	domain string

	// subdomainPattern matches one or more host labels followed by the
	// literal target domain. Built per domain with the domain quoted, so
	// dots in the domain never act as wildcards.
	subdomainPattern *regexp.Regexp
}

// New creates an Extractor for the given domain.
// The subdomain pattern is compiled here, once, ahead of any scanning.
func New(domain string) *Extractor {
	domain = strings.ToLower(strings.TrimSpace(domain))
	return &Extractor{
		domain: domain,
		subdomainPattern: regexp.MustCompile(
			`(?i)(?:[a-zA-Z0-9\-]+\.)+` + regexp.QuoteMeta(domain),
		),
	}
}

// Domain returns the lowercased target domain.
func (e *Extractor) Domain() string {
	return e.domain
}

// Emails returns the email addresses found in text that contain the
// target domain, lowercased. The domain filter is a coarse substring
// check: "alice@mail.example.com" passes for "example.com", and so does
// a domain embedded in a longer hostname. Duplicates are preserved;
// callers that want set semantics dedupe with a Set.
func (e *Extractor) Emails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)
	emails := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.ToLower(m)
		if strings.Contains(m, e.domain) {
			emails = append(emails, m)
		}
	}
	return emails
}

// Subdomains returns the hostnames found in text that end in the target
// domain, lowercased. A match must have at least one label before the
// domain; the bare domain itself is not a subdomain.
func (e *Extractor) Subdomains(text string) []string {
	matches := e.subdomainPattern.FindAllString(text, -1)
	subs := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.ToLower(m)
		// The label pattern can match the tail of an email address
		// ("alice@mail.example.com" yields "mail.example.com", which is
		// fine) but also the domain inside a longer name where our
		// domain is only a suffix fragment ("notexample.com"). The
		// pattern requires a dot before the domain, so that case only
		// arises when the domain match is not dot-separated; the suffix
		// check below keeps matches honest.
		if strings.HasSuffix(m, "."+e.domain) {
			subs = append(subs, m)
		}
	}
	return subs
}

// Set is an insertion-deduplicating string set used to aggregate matches
// across pages.
type Set struct {
	members map[string]struct{}
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{members: make(map[string]struct{})}
}

// Add inserts values into the set.
func (s *Set) Add(values ...string) {
	for _, v := range values {
		s.members[v] = struct{}{}
	}
}

// Len returns the number of distinct members.
func (s *Set) Len() int {
	return len(s.members)
}

// Sorted returns the members as a sorted slice.
// Sorting makes harvest output deterministic under set-equality.
func (s *Set) Sorted() []string {
	out := make([]string, 0, len(s.members))
	for v := range s.members {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
