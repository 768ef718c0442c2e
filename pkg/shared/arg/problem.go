package arg

import "strings"

// HandleProblem joins the positional arguments into one problem reference,
// so "lcv show two sum" looks up "two sum".
func HandleProblem(args []string) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if a = strings.TrimSpace(a); a != "" {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, " ")
}
