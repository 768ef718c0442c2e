// Package problems turns repository listings into the in-memory collection
// of problems and their solution files.
package problems

import "strings"

// CodeFile is one recognized solution file inside a problem folder.
type CodeFile struct {
	Name        string
	DisplayName string
	DownloadURL string
	Language    string
}

// Problem is one folder of the repository with at least one CodeFile.
type Problem struct {
	Name        string
	DisplayName string
	Files       []CodeFile
}

// Key is the numeric value embedded in the folder name.
func (p Problem) Key() int {
	return NumericKey(p.Name)
}

// Languages returns the distinct language tags of the problem's files in
// first-seen order.
func (p Problem) Languages() []string {
	seen := make(map[string]struct{}, len(p.Files))
	out := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		if _, ok := seen[f.Language]; ok {
			continue
		}
		seen[f.Language] = struct{}{}
		out = append(out, f.Language)
	}
	return out
}

// Collection is the ordered list of problems produced by one build. It is
// replaced wholesale, never edited in place.
type Collection []Problem

// Find returns the problem whose name or display name equals ref
// (case-insensitive), or whose numeric key equals ref when ref is a number.
func (c Collection) Find(ref string) (Problem, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Problem{}, false
	}
	for _, p := range c {
		if strings.EqualFold(p.Name, ref) || strings.EqualFold(p.DisplayName, ref) {
			return p, true
		}
	}
	if isDigits(ref) {
		key := NumericKey(ref)
		for _, p := range c {
			if p.Key() == key {
				return p, true
			}
		}
	}
	return Problem{}, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
