package tree

import (
	"github.com/itsmostafa/svgflat/internal/markup"
)

// Build constructs the hierarchy described by records. Run Validate first:
// Build never fails and only recovers loosely from sequences Validate would
// reject.
//
// An open tag with nothing open becomes the root. A self-closing tag with
// nothing open also becomes the root, which is how a document made of a
// single <tag/> is represented. Either way an earlier root is dropped and
// counted in ReplacedRoots. A close with nothing open is ignored.
func Build(records []markup.TagRecord) *Tree {
	t := &Tree{root: NoNode}

	var stack []NodeID
	for _, r := range records {
		if r.Name == "" {
			continue
		}

		switch r.Kind {
		case markup.KindOpen:
			if len(stack) == 0 {
				id := t.add(r, NoNode)
				t.setRoot(id)
				stack = append(stack, id)
			} else {
				id := t.add(r, stack[len(stack)-1])
				stack = append(stack, id)
			}

		case markup.KindSelfClose:
			if len(stack) == 0 {
				t.setRoot(t.add(r, NoNode))
			} else {
				t.add(r, stack[len(stack)-1])
			}

		case markup.KindClose:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	return t
}
