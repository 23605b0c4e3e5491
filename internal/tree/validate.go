package tree

import (
	"errors"
	"fmt"

	"github.com/itsmostafa/svgflat/internal/markup"
)

// Sentinel errors for the structural checks.
var (
	ErrEmptyInput     = errors.New("empty input")
	ErrInvalidRoot    = errors.New("invalid root")
	ErrUnbalancedTags = errors.New("unbalanced tags")
)

// StructureError describes why Validate rejected a sequence. Kind is one of
// the sentinels above and errors.Is matches it.
type StructureError struct {
	Kind     error
	Index    int    // position in the validated records, -1 at end of input
	Fragment int    // source fragment of that record, -1 at end of input
	Tag      string // offending tag
	Expected string // open tag a close was matched against
	Reason   string
}

func (e *StructureError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	if e.Index >= 0 {
		msg += fmt.Sprintf(" (fragment %d)", e.Fragment)
	}
	return msg
}

func (e *StructureError) Unwrap() error { return e.Kind }

// Validate checks that records form a single well nested element. It returns
// nil on success. Ignored records and records without a name are skipped.
func Validate(records []markup.TagRecord) error {
	if len(records) == 0 {
		return &StructureError{Kind: ErrEmptyInput, Index: -1, Fragment: -1, Reason: "no tags found"}
	}

	var stack []string
	hasRoot := false

	for i, r := range records {
		if r.Name == "" || r.Kind == markup.KindIgnored {
			continue
		}

		switch r.Kind {
		case markup.KindOpen:
			if len(stack) == 0 {
				if hasRoot {
					return &StructureError{
						Kind:     ErrInvalidRoot,
						Index:    i,
						Fragment: r.Fragment,
						Tag:      r.Name,
						Reason:   fmt.Sprintf("second top-level element <%s>", r.Name),
					}
				}
				hasRoot = true
			}
			stack = append(stack, r.Name)

		case markup.KindSelfClose:
			// no stack effect

		case markup.KindClose:
			if len(stack) == 0 {
				return &StructureError{
					Kind:     ErrUnbalancedTags,
					Index:    i,
					Fragment: r.Fragment,
					Tag:      r.Name,
					Reason:   fmt.Sprintf("closing tag </%s> without opening", r.Name),
				}
			}
			top := stack[len(stack)-1]
			if top != r.Name {
				return &StructureError{
					Kind:     ErrUnbalancedTags,
					Index:    i,
					Fragment: r.Fragment,
					Tag:      r.Name,
					Expected: top,
					Reason:   fmt.Sprintf("opened <%s> but closed </%s>", top, r.Name),
				}
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return &StructureError{
			Kind:     ErrUnbalancedTags,
			Index:    -1,
			Fragment: -1,
			Tag:      top,
			Expected: top,
			Reason:   fmt.Sprintf("%d unclosed tag(s) at end of input, innermost <%s>", len(stack), top),
		}
	}

	return nil
}
