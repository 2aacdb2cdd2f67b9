package snippet

import "strings"

// AnnotationIndex groups annotations by the zero-based token line they
// belong to. Lookups for lines without annotations, including lines past the
// end of the snippet, return the empty string.
type AnnotationIndex struct {
	byLine map[int][]string
}

// NewAnnotationIndex builds the index in a single pass, keeping the input
// order of messages within each line.
func NewAnnotationIndex(annotations []Annotation) *AnnotationIndex {
	idx := &AnnotationIndex{byLine: make(map[int][]string)}
	for _, a := range annotations {
		if a.Line < 1 {
			continue
		}
		idx.byLine[a.Line-1] = append(idx.byLine[a.Line-1], a.Message)
	}
	return idx
}

// Build returns the messages for the line at lineIndex joined by newlines.
func (idx *AnnotationIndex) Build(lineIndex int) string {
	if idx == nil {
		return ""
	}
	return strings.Join(idx.byLine[lineIndex], "\n")
}
