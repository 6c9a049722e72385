package accumulate

import (
	"context"
	"fmt"

	"github.com/groupgen/groupgen/internal/placeholder"
	"github.com/groupgen/groupgen/internal/prompt"
)

// Asker is the subset of prompt.Driver a Loop needs.
type Asker interface {
	Select(ctx context.Context, cfg prompt.SelectConfig) (string, error)
	Input(ctx context.Context, cfg prompt.InputConfig) (string, error)
}

// Field is one value collected per entry, e.g. a method name.
type Field struct {
	Key     string
	Message string
}

// Lane is an item template rendered once per entry. Fixed values are applied
// over the collected answers.
type Lane struct {
	Template placeholder.Template
	Schema   *placeholder.Schema
	Fixed    placeholder.Values
}

func (l Lane) render(answers placeholder.Values) (string, error) {
	return placeholder.Execute(l.Template, placeholder.Merge(answers, l.Fixed), l.Schema)
}

// Loop describes one accumulation: the kind question, its choices, the
// sentinel that stops it, the fields to collect and the lanes to render.
type Loop struct {
	Message  string
	Choices  []string
	Sentinel string
	Fields   []Field
	Lanes    []Lane

	// Verbatim maps a kind to fixed content. Choosing it sets every block to
	// that content and ends the loop.
	Verbatim map[string]string
}

// Run asks for entries until the sentinel (or a verbatim kind) is chosen and
// returns one Block per lane, in lane order.
func (l Loop) Run(ctx context.Context, asker Asker) ([]*Block, error) {
	blocks := newBlocks(len(l.Lanes))

	for {
		kind, err := asker.Select(ctx, prompt.SelectConfig{
			Message: l.Message,
			Options: l.Choices,
			Default: l.Sentinel,
		})
		if err != nil {
			return nil, fmt.Errorf("choosing %s: %w", l.Message, err)
		}

		if kind == l.Sentinel {
			return blocks, nil
		}

		if body, ok := l.Verbatim[kind]; ok {
			for _, b := range blocks {
				b.Set(body)
			}
			return blocks, nil
		}

		answers := make(placeholder.Values, len(l.Fields))
		for _, f := range l.Fields {
			v, err := asker.Input(ctx, prompt.InputConfig{Message: f.Message})
			if err != nil {
				return nil, fmt.Errorf("asking %s: %w", f.Message, err)
			}
			answers[f.Key] = v
		}

		if err := appendEntry(blocks, l.Lanes, answers); err != nil {
			return nil, err
		}
	}
}

// Fold renders an already collected list of entries through lanes, exactly as
// Run would have for the same answers.
func Fold(entries []placeholder.Values, lanes ...Lane) ([]*Block, error) {
	blocks := newBlocks(len(lanes))
	for _, answers := range entries {
		if err := appendEntry(blocks, lanes, answers); err != nil {
			return nil, err
		}
	}
	return blocks, nil
}

// appendEntry renders answers through every lane before touching any block,
// so a failing lane leaves all blocks the same length.
func appendEntry(blocks []*Block, lanes []Lane, answers placeholder.Values) error {
	rendered := make([]string, len(lanes))
	for i, lane := range lanes {
		out, err := lane.render(answers)
		if err != nil {
			return fmt.Errorf("rendering entry %d: %w", blocks[i].Len()+1, err)
		}
		rendered[i] = out
	}
	for i, out := range rendered {
		blocks[i].Append(out)
	}
	return nil
}

func newBlocks(n int) []*Block {
	blocks := make([]*Block, n)
	for i := range blocks {
		blocks[i] = &Block{}
	}
	return blocks
}
