// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strings"

// JoinNames renders a slice of names as the comma-joined form stored in the
// participants.recipients column ("alice, bob"). Empty entries are skipped.
//
// Example:
//
//	s := utils.JoinNames([]string{"alice", "bob"}) // "alice, bob"
//	s = utils.JoinNames(nil)                       // ""
func JoinNames(names []string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if t := strings.TrimSpace(n); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ", ")
}

// SplitNames is the inverse of JoinNames: it splits a stored recipients
// string back into individual names, dropping blanks.
func SplitNames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
