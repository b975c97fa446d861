package cli

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var stateSchemaSource string

// SchemaIssue is one schema violation found in a state document.
type SchemaIssue struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (i SchemaIssue) String() string {
	if i.Path != "" {
		return fmt.Sprintf("%s: %s", i.Path, i.Message)
	}
	return i.Message
}

// ValidateStateDocument checks a raw state document against the embedded
// CUE schema. Returns the list of violations; an empty list means the
// document is structurally sound. An error means the validator itself
// could not run, not that the document is invalid.
func ValidateStateDocument(doc map[string]any) ([]SchemaIssue, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(stateSchemaSource)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile state schema: %w", err)
	}

	value := ctx.Encode(doc)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("encode state document: %w", err)
	}

	unified := schema.Unify(value)
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil, nil
	}

	var issues []SchemaIssue
	for _, e := range cueerrors.Errors(err) {
		issues = append(issues, SchemaIssue{
			Path:    cuePathString(e.Path()),
			Message: e.Error(),
		})
	}
	return issues, nil
}

func cuePathString(path []string) string {
	out := ""
	for i, seg := range path {
		if i > 0 {
			out += "."
		}
		out += seg
	}
	return out
}
