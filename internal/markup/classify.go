package markup

import "strings"

// Classify parses one "<...>" fragment into a TagRecord. The fragment is
// checked as given, so callers pass Segment output or sanitize it first.
//
// Comments and processing instructions come back as KindIgnored with no name.
// A trailing '/' marks a self-closing tag and a leading '/' on the name marks
// a closing tag. Attribute tokens must look like key=value; anything else
// after the name is dropped.
func Classify(fragment string) (TagRecord, error) {
	return classify(-1, fragment)
}

// ClassifyAll classifies fragments in order and stops at the first one that
// fails.
func ClassifyAll(fragments []string) ([]TagRecord, error) {
	records := make([]TagRecord, 0, len(fragments))
	for i, fragment := range fragments {
		record, err := classify(i, fragment)
		if err != nil {
			return nil, err
		}
		record.Fragment = i
		records = append(records, record)
	}
	return records, nil
}

// Tokenize runs Segment and ClassifyAll over raw text and drops ignored
// records.
func Tokenize(s string) ([]TagRecord, error) {
	fragments, err := Segment(s)
	if err != nil {
		return nil, err
	}

	records, err := ClassifyAll(fragments)
	if err != nil {
		return nil, err
	}
	return DropIgnored(records), nil
}

// DropIgnored returns records without the KindIgnored entries.
func DropIgnored(records []TagRecord) []TagRecord {
	kept := make([]TagRecord, 0, len(records))
	for _, r := range records {
		if r.Kind != KindIgnored {
			kept = append(kept, r)
		}
	}
	return kept
}

func classify(index int, fragment string) (TagRecord, error) {
	fail := func(reason string) (TagRecord, error) {
		return TagRecord{}, &FragmentError{Index: index, Fragment: fragment, Reason: reason}
	}

	text := strings.TrimSpace(fragment)
	if strings.Count(text, "<") != 1 || strings.Count(text, ">") != 1 {
		return fail("expected exactly one '<' and one '>'")
	}
	if !strings.HasPrefix(text, "<") || !strings.HasSuffix(text, ">") {
		return fail("fragment must start with '<' and end with '>'")
	}

	inner := strings.TrimSpace(text[1 : len(text)-1])
	if strings.HasPrefix(inner, "?") || strings.HasPrefix(inner, "!--") {
		return TagRecord{Kind: KindIgnored}, nil
	}

	kind := KindOpen
	if strings.HasSuffix(inner, "/") {
		kind = KindSelfClose
		inner = strings.TrimSpace(strings.TrimSuffix(inner, "/"))
	}

	tokens := strings.Fields(inner)
	if len(tokens) == 0 {
		return fail("missing tag name")
	}

	name := tokens[0]
	if strings.HasPrefix(name, "/") {
		kind = KindClose
		name = strings.TrimPrefix(name, "/")
	}
	if name == "" {
		return fail("missing tag name")
	}

	return TagRecord{
		Name:       name,
		Attributes: parseAttributes(tokens[1:]),
		Kind:       kind,
	}, nil
}

// parseAttributes keeps key=value tokens, splitting on the first '='.
func parseAttributes(tokens []string) Attributes {
	var attrs Attributes
	for _, token := range tokens {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		value = strings.TrimPrefix(value, `"`)
		value = strings.TrimSuffix(value, `"`)
		attrs = append(attrs, Attribute{Name: key, Value: value})
	}
	return attrs
}
