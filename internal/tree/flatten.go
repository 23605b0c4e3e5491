package tree

import (
	"strconv"
)

// Row is one line of a flattened table.
type Row []string

// Table is a header row followed by one row per (node, attribute) pair.
type Table []Row

// Header returns the fixed column names of a flattened table.
func Header() Row {
	return Row{"ID", "ParentID", "Depth", "Tag", "Attribute", "Value"}
}

// Record is the typed form of a data row.
type Record struct {
	ID        int    `json:"id" yaml:"id"`
	ParentID  int    `json:"parent_id" yaml:"parent_id"`
	Depth     int    `json:"depth" yaml:"depth"`
	Tag       string `json:"tag" yaml:"tag"`
	Attribute string `json:"attribute" yaml:"attribute"`
	Value     string `json:"value" yaml:"value"`
}

// Header returns the column names matching Row.
func (r Record) Header() []string { return Header() }

// Row renders the record as table cells.
func (r Record) Row() []string {
	return []string{
		strconv.Itoa(r.ID),
		strconv.Itoa(r.ParentID),
		strconv.Itoa(r.Depth),
		r.Tag,
		r.Attribute,
		r.Value,
	}
}

// Records walks t in pre-order and numbers every node from 0 in visiting
// order. A node with no attributes yields one record with an empty attribute
// and value; otherwise it yields one record per attribute. The root's
// ParentID is -1.
func Records(t *Tree) []Record {
	var records []Record

	ids := make(map[NodeID]int)
	next := 0
	t.Walk(func(id NodeID, depth int) bool {
		n := t.nodes[id]

		rowID := next
		next++
		ids[id] = rowID

		parentID := -1
		if n.Parent != NoNode {
			parentID = ids[n.Parent]
		}

		if len(n.Attributes) == 0 {
			records = append(records, Record{ID: rowID, ParentID: parentID, Depth: depth, Tag: n.Tag})
			return true
		}
		for _, attr := range n.Attributes {
			records = append(records, Record{
				ID:        rowID,
				ParentID:  parentID,
				Depth:     depth,
				Tag:       n.Tag,
				Attribute: attr.Name,
				Value:     attr.Value,
			})
		}
		return true
	})

	return records
}

// Flatten converts t into a table. The header row is always present, so an
// empty tree gives a table of just the header.
func Flatten(t *Tree) Table {
	return TableOf(Records(t))
}

// TableOf puts the header row in front of the rendered records.
func TableOf(records []Record) Table {
	table := make(Table, 0, len(records)+1)
	table = append(table, Header())
	for _, r := range records {
		table = append(table, r.Row())
	}
	return table
}
