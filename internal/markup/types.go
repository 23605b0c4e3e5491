// Package markup turns raw SVG-like text into a sequence of tag records.
//
// The stages run left to right: Sanitize strips control characters, Segment
// cuts the text into "<...>" fragments and Classify parses one fragment into a
// TagRecord. Tokenize chains the three and drops comments and processing
// instructions.
package markup

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMalformedInput  = errors.New("empty or malformed input")
	ErrInvalidFragment = errors.New("invalid fragment")
)

// Kind classifies a tag.
type Kind int

const (
	KindIgnored   Kind = iota // <?...?> and <!--...-->
	KindOpen                  // <tag>
	KindClose                 // </tag>
	KindSelfClose             // <tag/>
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindIgnored:
		return "ignored"
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	case KindSelfClose:
		return "self-close"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Attribute is a single name="value" pair of a tag.
type Attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Attributes keeps attributes in document order. Repeated names are kept as
// separate entries.
type Attributes []Attribute

// Get returns the value of the first attribute called name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// TagRecord is the parsed form of one fragment.
type TagRecord struct {
	Name       string
	Attributes Attributes
	Kind       Kind
	// Fragment is the position of the source fragment in the Segment
	// output. ClassifyAll sets it; Classify leaves it zero.
	Fragment int
}

// FragmentError reports a fragment the classifier could not parse.
type FragmentError struct {
	Index    int // position in the fragment sequence, -1 when unknown
	Fragment string
	Reason   string
}

func (e *FragmentError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s at fragment %d %q: %s", ErrInvalidFragment, e.Index, e.Fragment, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidFragment, e.Fragment, e.Reason)
}

func (e *FragmentError) Unwrap() error { return ErrInvalidFragment }
