// Package render syntax-highlights solution files for the terminal.
package render

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/lcv/internal/cache"
	"github.com/Paintersrp/lcv/internal/display"
	"github.com/Paintersrp/lcv/internal/logging"
)

// chroma lexer names for the recognized language tags.
var lexers = map[string]string{
	"java": "java",
	"cpp":  "cpp",
	"py":   "python",
	"js":   "javascript",
}

// Renderer renders code through glamour and memoizes the output.
type Renderer struct {
	cache   *cache.Cache
	profile termenv.Profile
}

// New returns a Renderer; c may be nil to disable memoization.
func New(c *cache.Cache) *Renderer {
	return &Renderer{cache: c, profile: termenv.ANSI256}
}

// Code renders content as a highlighted block for the given language tag,
// wrapped at width columns. When glamour fails the raw content is returned
// with the error.
func (r *Renderer) Code(content, language string, theme display.Theme, width int) (string, error) {
	key := cacheKey(content, language, theme, width)
	if r.cache != nil {
		if out, ok := r.cache.Get(key); ok {
			return out, nil
		}
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.GlamourStyle()),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(r.profile),
	)
	if err != nil {
		return content, fmt.Errorf("create renderer: %w", err)
	}

	out, err := tr.Render(Fence(content, language))
	if err != nil {
		return content, fmt.Errorf("render %s: %w", language, err)
	}

	if r.cache != nil {
		if err := r.cache.Put(key, out); err != nil {
			logging.Debug("render not cached", logging.Err(err))
		}
	}
	return out, nil
}

// Fence wraps content in a markdown code fence tagged with the lexer for
// language. The fence is longer than any backtick run inside content.
func Fence(content, language string) string {
	lexer := lexers[language]
	if lexer == "" {
		lexer = language
	}

	fence := "```"
	for strings.Contains(content, fence) {
		fence += "`"
	}

	var b strings.Builder
	b.WriteString(fence)
	b.WriteString(lexer)
	b.WriteString("\n")
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(fence)
	b.WriteString("\n")
	return b.String()
}

func cacheKey(content, language string, theme display.Theme, width int) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%s|%s|%s|%d", hex.EncodeToString(sum[:]), language, theme, width)
}
