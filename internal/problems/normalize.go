package problems

import "github.com/Paintersrp/lcv/internal/github"

// NormalizeFolder builds the Problem for dir from its child listing. Children
// are matched on name alone, whatever their listing type, and kept in listing
// order; ok is false when none match, and such folders must be left out of
// the Collection.
func NormalizeFolder(dir github.Entry, children []github.Entry) (p Problem, ok bool) {
	files := make([]CodeFile, 0, len(children))
	for _, child := range children {
		if !IsSourceFile(child.Name) {
			continue
		}
		display := StripSourceSuffix(child.Name)
		if display == "" {
			display = child.Name
		}
		files = append(files, CodeFile{
			Name:        child.Name,
			DisplayName: display,
			DownloadURL: child.DownloadURL,
			Language:    Language(child.Name),
		})
	}

	if len(files) == 0 {
		return Problem{}, false
	}

	return Problem{
		Name:        dir.Name,
		DisplayName: ProblemDisplayName(dir.Name),
		Files:       files,
	}, true
}
