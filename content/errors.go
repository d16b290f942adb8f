package content

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SchemaError reports a front-matter block that failed validation. Fields maps
// each offending field name to its violation.
type SchemaError struct {
	Path   string
	Fields validation.Errors
}

func (e *SchemaError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("content: invalid front matter in %s (%s): %v", e.Path, strings.Join(names, ", "), e.Fields)
}

func (e *SchemaError) Unwrap() error {
	return e.Fields
}
