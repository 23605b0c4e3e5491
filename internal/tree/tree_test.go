package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/itsmostafa/svgflat/internal/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(name string, attrs ...markup.Attribute) markup.TagRecord {
	return markup.TagRecord{Name: name, Attributes: attrs, Kind: markup.KindOpen}
}

func closeTag(name string) markup.TagRecord {
	return markup.TagRecord{Name: name, Kind: markup.KindClose}
}

func selfClose(name string, attrs ...markup.Attribute) markup.TagRecord {
	return markup.TagRecord{Name: name, Attributes: attrs, Kind: markup.KindSelfClose}
}

func attr(name, value string) markup.Attribute {
	return markup.Attribute{Name: name, Value: value}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		records []markup.TagRecord
		want    error
	}{
		{
			name:    "empty",
			records: nil,
			want:    ErrEmptyInput,
		},
		{
			name:    "missing close",
			records: []markup.TagRecord{open("svg"), open("g"), selfClose("circle"), closeTag("svg")},
			want:    ErrUnbalancedTags,
		},
		{
			name:    "unclosed at end",
			records: []markup.TagRecord{open("svg"), selfClose("circle"), open("g")},
			want:    ErrUnbalancedTags,
		},
		{
			name:    "bad hierarchy",
			records: []markup.TagRecord{open("svg"), open("g"), closeTag("svg"), closeTag("g")},
			want:    ErrUnbalancedTags,
		},
		{
			name:    "close without open",
			records: []markup.TagRecord{closeTag("g")},
			want:    ErrUnbalancedTags,
		},
		{
			name:    "two roots",
			records: []markup.TagRecord{open("g"), closeTag("g"), open("g"), closeTag("g")},
			want:    ErrInvalidRoot,
		},
		{
			name:    "valid",
			records: []markup.TagRecord{open("svg"), open("g"), selfClose("circle"), closeTag("g"), closeTag("svg")},
			want:    nil,
		},
		{
			name:    "ignored records skipped",
			records: []markup.TagRecord{{Kind: markup.KindIgnored}, open("svg"), {Kind: markup.KindIgnored}, closeTag("svg")},
			want:    nil,
		},
		{
			name:    "standalone self close",
			records: []markup.TagRecord{selfClose("circle")},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.records)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateDiagnostics(t *testing.T) {
	t.Run("mismatch", func(t *testing.T) {
		err := Validate([]markup.TagRecord{open("svg"), open("g"), closeTag("svg")})
		var se *StructureError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, 2, se.Index)
		assert.Equal(t, "svg", se.Tag)
		assert.Equal(t, "g", se.Expected)
		assert.Contains(t, err.Error(), "opened <g> but closed </svg>")
	})

	t.Run("second root", func(t *testing.T) {
		err := Validate([]markup.TagRecord{open("a"), closeTag("a"), open("b"), closeTag("b")})
		var se *StructureError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, 2, se.Index)
		assert.Equal(t, "b", se.Tag)
	})

	t.Run("unclosed", func(t *testing.T) {
		err := Validate([]markup.TagRecord{open("svg"), open("g")})
		var se *StructureError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, -1, se.Index)
		assert.Equal(t, -1, se.Fragment)
		assert.Equal(t, "g", se.Tag)
		assert.NotContains(t, err.Error(), "fragment")
	})

	t.Run("reports source fragment", func(t *testing.T) {
		records, err := markup.Tokenize(`<?xml version="1.0"?><!-- c --><svg><g></svg>`)
		require.NoError(t, err)

		err = Validate(records)
		var se *StructureError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, 2, se.Index)
		assert.Equal(t, 4, se.Fragment)
		assert.Contains(t, err.Error(), "(fragment 4)")
	})
}

func TestBuild(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		tr := Build(nil)
		assert.True(t, tr.Empty())
		assert.Equal(t, 0, tr.Size())
		assert.Equal(t, -1, tr.Depth())
	})

	t.Run("nested structure", func(t *testing.T) {
		records := []markup.TagRecord{
			open("svg", attr("width", "200"), attr("height", "200"), attr("xmlns", "http://www.w3.org/2000/svg")),
			open("g", attr("id", "group1")),
			selfClose("circle", attr("cx", "55"), attr("cy", "55"), attr("r", "55"),
				attr("stroke", "red"), attr("stroke-width", "4"), attr("fill", "yellow")),
			closeTag("g"),
			closeTag("svg"),
		}
		require.NoError(t, Validate(records))

		tr := Build(records)
		root, ok := tr.Root()
		require.True(t, ok)

		svg := tr.Node(root)
		assert.Equal(t, "svg", svg.Tag)
		assert.Equal(t, NoNode, svg.Parent)
		require.Len(t, svg.Children, 1)
		require.Len(t, svg.Attributes, 3)
		assert.Equal(t, attr("xmlns", "http://www.w3.org/2000/svg"), svg.Attributes[2])

		g := tr.Node(svg.Children[0])
		assert.Equal(t, "g", g.Tag)
		assert.Equal(t, root, g.Parent)
		require.Len(t, g.Children, 1)

		circle := tr.Node(g.Children[0])
		assert.Equal(t, "circle", circle.Tag)
		assert.Empty(t, circle.Children)
		stroke, _ := circle.Attributes.Get("stroke-width")
		assert.Equal(t, "4", stroke)

		assert.Equal(t, 3, tr.Size())
		assert.Equal(t, 2, tr.Depth())
	})

	t.Run("children keep document order", func(t *testing.T) {
		tr := Build([]markup.TagRecord{
			open("svg"), selfClose("a"), selfClose("b"), open("c"), closeTag("c"), selfClose("d"), closeTag("svg"),
		})
		root, _ := tr.Root()
		var tags []string
		for _, id := range tr.Children(root) {
			tags = append(tags, tr.Tag(id))
		}
		assert.Equal(t, []string{"a", "b", "c", "d"}, tags)
	})

	// Accepted on purpose: a document that is a single self-closing element
	// has that element as its root.
	t.Run("standalone self close becomes root", func(t *testing.T) {
		tr := Build([]markup.TagRecord{selfClose("circle", attr("r", "1"))})
		root, ok := tr.Root()
		require.True(t, ok)
		assert.Equal(t, "circle", tr.Tag(root))
		assert.Empty(t, tr.Children(root))
	})

	// Accepted on purpose: Validate lets top-level self-closing tags through
	// and Build keeps the last one as the root, dropping what came before.
	t.Run("trailing self close replaces root", func(t *testing.T) {
		records, err := markup.Tokenize(`<svg w="1"><g/></svg><x/>`)
		require.NoError(t, err)
		require.NoError(t, Validate(records))

		tr := Build(records)
		root, ok := tr.Root()
		require.True(t, ok)
		assert.Equal(t, "x", tr.Tag(root))
		assert.Equal(t, 1, tr.Size())
		assert.Equal(t, 1, tr.ReplacedRoots())
		assert.Equal(t, Table{Header(), {"0", "-1", "0", "x", "", ""}}, Flatten(tr))
	})

	t.Run("last of several self closes is root", func(t *testing.T) {
		records, err := markup.Tokenize(`<a/><b/>`)
		require.NoError(t, err)
		require.NoError(t, Validate(records))

		tr := Build(records)
		root, ok := tr.Root()
		require.True(t, ok)
		assert.Equal(t, "b", tr.Tag(root))
		assert.Equal(t, 1, tr.ReplacedRoots())
		assert.Equal(t, Table{Header(), {"0", "-1", "0", "b", "", ""}}, Flatten(tr))
	})

	t.Run("single root is not replaced", func(t *testing.T) {
		tr := Build([]markup.TagRecord{open("svg"), selfClose("g"), closeTag("svg")})
		assert.Equal(t, 0, tr.ReplacedRoots())
	})

	t.Run("orphan close ignored", func(t *testing.T) {
		tr := Build([]markup.TagRecord{closeTag("x"), open("svg"), closeTag("svg"), closeTag("svg")})
		root, ok := tr.Root()
		require.True(t, ok)
		assert.Equal(t, "svg", tr.Tag(root))
		assert.Equal(t, 1, tr.Size())
	})

	t.Run("only ignored records", func(t *testing.T) {
		tr := Build([]markup.TagRecord{{Kind: markup.KindIgnored}})
		assert.True(t, tr.Empty())
	})

	t.Run("node copy does not alias tree", func(t *testing.T) {
		tr := Build([]markup.TagRecord{open("svg", attr("a", "1")), selfClose("g"), closeTag("svg")})
		root, _ := tr.Root()
		n := tr.Node(root)
		n.Attributes[0].Value = "changed"
		n.Children[0] = 99
		again := tr.Node(root)
		assert.Equal(t, "1", again.Attributes[0].Value)
		assert.Equal(t, NodeID(1), again.Children[0])
	})
}

func TestZeroTree(t *testing.T) {
	var tr Tree
	assert.True(t, tr.Empty())
	assert.Equal(t, Table{Header()}, Flatten(&tr))

	var nilTree *Tree
	assert.True(t, nilTree.Empty())
}

func TestFlatten(t *testing.T) {
	t.Run("empty tree has header only", func(t *testing.T) {
		assert.Equal(t, Table{Header()}, Flatten(Build(nil)))
		assert.Equal(t, Table{Header()}, TableOf(nil))
	})

	t.Run("same rows as records", func(t *testing.T) {
		tr := Build([]markup.TagRecord{open("svg", attr("a", "1")), selfClose("g"), closeTag("svg")})
		assert.Equal(t, TableOf(Records(tr)), Flatten(tr))
	})

	t.Run("attributes expand to rows", func(t *testing.T) {
		tr := Build([]markup.TagRecord{
			open("svg"),
			open("g"),
			selfClose("circle", attr("attr1", "value1"), attr("attr2", "value2")),
			closeTag("g"),
			closeTag("svg"),
		})
		want := Table{
			Header(),
			{"0", "-1", "0", "svg", "", ""},
			{"1", "0", "1", "g", "", ""},
			{"2", "1", "2", "circle", "attr1", "value1"},
			{"2", "1", "2", "circle", "attr2", "value2"},
		}
		assert.Equal(t, want, Flatten(tr))
	})

	t.Run("pre-order ids across siblings", func(t *testing.T) {
		tr := Build([]markup.TagRecord{
			open("svg"),
			open("g"), selfClose("circle"), selfClose("rect"), closeTag("g"),
			open("g"), selfClose("line"), closeTag("g"),
			closeTag("svg"),
		})
		want := Table{
			Header(),
			{"0", "-1", "0", "svg", "", ""},
			{"1", "0", "1", "g", "", ""},
			{"2", "1", "2", "circle", "", ""},
			{"3", "1", "2", "rect", "", ""},
			{"4", "0", "1", "g", "", ""},
			{"5", "4", "2", "line", "", ""},
		}
		assert.Equal(t, want, Flatten(tr))
	})

	t.Run("deterministic", func(t *testing.T) {
		tr := Build([]markup.TagRecord{open("svg", attr("w", "1")), selfClose("a"), selfClose("b"), closeTag("svg")})
		assert.Equal(t, Flatten(tr), Flatten(tr))
	})

	t.Run("deep nesting", func(t *testing.T) {
		const depth = 100000
		records := make([]markup.TagRecord, 0, 2*depth)
		for i := 0; i < depth; i++ {
			records = append(records, open("g"))
		}
		for i := 0; i < depth; i++ {
			records = append(records, closeTag("g"))
		}
		require.NoError(t, Validate(records))

		table := Flatten(Build(records))
		require.Len(t, table, depth+1)
		last := table[len(table)-1]
		assert.Equal(t, Row{"99999", "99998", "99999", "g", "", ""}, last)
	})
}

func TestRoundTrip(t *testing.T) {
	records, err := markup.Tokenize(`<svg width="200"><g id="group1"><circle r="55"/></g></svg>`)
	require.NoError(t, err)
	require.NoError(t, Validate(records))

	tr := Build(records)
	root, ok := tr.Root()
	require.True(t, ok)
	assert.Equal(t, "svg", tr.Tag(root))

	want := Table{
		Header(),
		{"0", "-1", "0", "svg", "width", "200"},
		{"1", "0", "1", "g", "id", "group1"},
		{"2", "1", "2", "circle", "r", "55"},
	}
	assert.Equal(t, want, Flatten(tr))
}

func TestPipelineOutcomes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"close while child open", "<svg><g></svg>", ErrUnbalancedTags},
		{"two top-level opens", "<g></g><g></g>", ErrInvalidRoot},
		{"empty", "", ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := markup.Tokenize(tt.input)
			if err != nil {
				require.ErrorIs(t, err, markup.ErrMalformedInput)
				records = nil
			}
			assert.ErrorIs(t, Validate(records), tt.want)
		})
	}
}

func TestSelfClosingWithoutAttributes(t *testing.T) {
	records, err := markup.Tokenize("<svg>\n  <g>\n    <path/>\n  </g>\n</svg>")
	require.NoError(t, err)
	require.NoError(t, Validate(records))

	var rows []Row
	for _, row := range Flatten(Build(records))[1:] {
		if row[3] == "path" {
			rows = append(rows, row)
		}
	}
	require.Len(t, rows, 1)
	assert.Equal(t, Row{"2", "1", "2", "path", "", ""}, rows[0])
}

func TestRecordRow(t *testing.T) {
	r := Record{ID: 3, ParentID: -1, Depth: 0, Tag: "svg", Attribute: "w", Value: "a,b"}
	assert.Equal(t, []string{"3", "-1", "0", "svg", "w", "a,b"}, r.Row())
	assert.Equal(t, "ID,ParentID,Depth,Tag,Attribute,Value", strings.Join(r.Header(), ","))
}
