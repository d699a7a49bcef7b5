// Package render implements the literal placeholder substitution used for
// every generated artifact. There is deliberately no template language here:
// downstream files (CSS, fish, Hyprland config) have conflicting escaping
// rules, so the contract is a single literal replace of {key} tokens.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	idaerrors "github.com/idawm/idatheme/pkg/errors"
)

// Renderer loads templates from a fixed directory.
type Renderer struct {
	Dir string
}

// New creates a Renderer reading templates from dir.
func New(dir string) *Renderer {
	return &Renderer{Dir: dir}
}

// Render loads the named template and substitutes every {key} token that has
// a matching entry in data. Tokens without a match are left verbatim, and
// replacement text is never re-scanned, so values containing braces pass
// through untouched.
func (r *Renderer) Render(name string, data map[string]string) (string, error) {
	path := filepath.Join(r.Dir, name)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", idaerrors.NewTemplateNotFoundError(path)
		}
		return "", fmt.Errorf("read template %s: %w", path, err)
	}

	return substitute(string(raw), data), nil
}

// substitute performs a single left-to-right pass over content.
func substitute(content string, data map[string]string) string {
	var out strings.Builder
	out.Grow(len(content))

	i := 0
	for i < len(content) {
		open := strings.IndexByte(content[i:], '{')
		if open < 0 {
			out.WriteString(content[i:])
			break
		}
		open += i
		out.WriteString(content[i:open])

		end := strings.IndexByte(content[open:], '}')
		if end < 0 {
			out.WriteString(content[open:])
			break
		}
		end += open

		if value, ok := data[content[open+1:end]]; ok {
			out.WriteString(value)
			i = end + 1
			continue
		}

		// Unknown placeholder: keep the brace and rescan just past it, so
		// an inner token like the {fg} in "{x{fg}" is still found.
		out.WriteByte('{')
		i = open + 1
	}

	return out.String()
}
