// Package main provides the entry point for the webrecon CLI.
//
// Webrecon is a reconnaissance data gathering tool. It fetches URL lists
// in parallel, probes usernames across a catalog of sites, and harvests
// domain-scoped emails and subdomains from search-engine result pages.
//
// Usage:
//
//	webrecon fetch <url> [url...]
//	webrecon presence <username>
//	webrecon harvest <domain>
//
// See --help for all available options.
package main

// main is the entry point for webrecon.
func main() {
	Execute()
}
