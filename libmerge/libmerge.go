// Package libmerge splices library source text into a main program at
// its first `*` marker, before the result ever reaches the lexer.
package libmerge

import "strings"

// Merge combines an ordered list of library sources into code: Combine
// folds them into one body, which is then spliced into code at its
// first `*`. Passing no libraries returns code unchanged.
func Merge(code string, libs []string) string {
	return mergeSingle(code, Combine(libs))
}

// Combine right-folds libs into a single body — libs[0] ends up
// innermost, spliced into the tail of libs[1], and so on — without
// touching any main source. The caller's line-offset accounting
// (subtracting the number of line breaks this body adds from reported
// error lines) needs
// this intermediate result on its own, not just the final Merge.
func Combine(libs []string) string {
	var combined string
	for i := len(libs) - 1; i >= 0; i-- {
		combined = mergeSingle(combined, libs[i])
	}
	return combined
}

// mergeSingle replaces the first `*` in host with guest's full text. No
// `*` is added back. Either side being empty passes the other through
// unchanged, matching the original splice rule this was ported from.
func mergeSingle(host, guest string) string {
	if host == "" {
		return guest
	}
	if guest == "" {
		return host
	}

	idx := strings.IndexByte(host, '*')
	if idx < 0 {
		return host
	}

	return host[:idx] + guest + host[idx+1:]
}
