package accumulate

import "strings"

// Block is an ordered, append-only list of rendered fragments. It renders as
// each fragment preceded by a newline. A Block may instead hold a verbatim
// body set with Set, which replaces anything appended before.
type Block struct {
	fragments []string
	verbatim  string
	fixed     bool
}

// Append adds a rendered fragment to the end of the block.
func (b *Block) Append(fragment string) {
	b.fragments = append(b.fragments, fragment)
}

// Set replaces the block's contents with body, rendered as-is.
func (b *Block) Set(body string) {
	b.fragments = nil
	b.verbatim = body
	b.fixed = true
}

// Len returns the number of appended fragments. A verbatim block counts as one.
func (b *Block) Len() int {
	if b.fixed {
		return 1
	}
	return len(b.fragments)
}

// Entries returns a copy of the appended fragments in order.
func (b *Block) Entries() []string {
	if b.fixed {
		return []string{b.verbatim}
	}
	out := make([]string, len(b.fragments))
	copy(out, b.fragments)
	return out
}

// String joins the block once.
func (b *Block) String() string {
	if b.fixed {
		return b.verbatim
	}
	var sb strings.Builder
	for _, f := range b.fragments {
		sb.WriteByte('\n')
		sb.WriteString(f)
	}
	return sb.String()
}
