package recon

import "strings"

// CandidateUsernames generates likely usernames from a real name.
// "John Doe" yields the common handle patterns (johndoe, john.doe,
// john_doe, johnd, jdoe, doejohn, johndoe123, john_doe_). A single-word
// input is returned as-is, lowercased. Middle names are ignored; only the
// first and last parts contribute.
//
// The output is deduplicated and preserves generation order so the most
// common patterns are probed first.
func CandidateUsernames(fullName string) []string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(fullName)))
	if len(parts) == 0 {
		return nil
	}
	if len(parts) == 1 {
		return []string{parts[0]}
	}

	first := parts[0]
	last := parts[len(parts)-1]

	patterns := []string{
		first + last,
		first + "." + last,
		first + "_" + last,
		first + last[:1],
		first[:1] + last,
		last + first,
		first + last + "123",
		first + "_" + last + "_",
	}

	seen := make(map[string]bool, len(patterns))
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
