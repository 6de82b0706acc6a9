package export

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kompox/patternapi/domain/contract"
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
	"github.com/kompox/patternapi/internal/codec"
	"github.com/kompox/patternapi/internal/logging"
	"github.com/kompox/patternapi/internal/tsgen"
)

// ExportInput selects what to render.
type ExportInput struct {
	Format Format `json:"format"`
	// Patterns restricts the export to these wire strings or identifiers.
	Patterns []string `json:"patterns,omitempty"`
	// SkipDeprecated leaves deprecated contracts out.
	SkipDeprecated bool `json:"skipDeprecated,omitempty"`
}

// ExportOutput holds the rendered document.
type ExportOutput struct {
	Format  Format `json:"format"`
	Count   int    `json:"count"`
	Content []byte `json:"-"`
}

// Export renders the selected contracts.
func (u *UseCase) Export(ctx context.Context, in *ExportInput) (*ExportOutput, error) {
	if in == nil {
		in = &ExportInput{}
	}
	format := in.Format
	if format == "" {
		format = FormatJSON
	}
	descs, err := selectDescriptors(in.Patterns, in.SkipDeprecated)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug(ctx, "exporting contracts", "format", string(format), "count", len(descs))

	var content []byte
	switch format {
	case FormatJSON:
		content, err = renderJSON(descs)
	case FormatYAML:
		content, err = renderYAML(descs)
	case FormatTypeScript:
		content, err = renderTypeScript(descs)
	default:
		_, err = ParseFormat(string(format))
	}
	if err != nil {
		return nil, err
	}
	return &ExportOutput{Format: format, Count: len(descs), Content: content}, nil
}

func selectDescriptors(names []string, skipDeprecated bool) ([]*contract.Descriptor, error) {
	var want map[pattern.Pattern]bool
	if len(names) > 0 {
		want = make(map[pattern.Pattern]bool, len(names))
		for _, n := range names {
			p, err := pattern.Resolve(n)
			if err != nil {
				return nil, err
			}
			want[p] = true
		}
	}
	var out []*contract.Descriptor
	for _, d := range contract.Descriptors() {
		if want != nil && !want[d.Pattern()] {
			continue
		}
		if skipDeprecated && d.Deprecated() {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func configs(descs []*contract.Descriptor) (map[string]model.PatternConfig, error) {
	m := make(map[string]model.PatternConfig, len(descs))
	for _, d := range descs {
		cfg, err := d.Config()
		if err != nil {
			return nil, err
		}
		m[d.Pattern().String()] = cfg
	}
	return m, nil
}

func renderJSON(descs []*contract.Descriptor) ([]byte, error) {
	m, err := configs(descs)
	if err != nil {
		return nil, err
	}
	b, err := codec.MarshalIndent(m)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// renderYAML goes through JSON so the json tag names are kept, then
// re-encodes the node tree in block style.
func renderYAML(descs []*contract.Descriptor) ([]byte, error) {
	j, err := renderJSON(descs)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(j, &doc); err != nil {
		return nil, fmt.Errorf("yaml conversion: %w", err)
	}
	blockStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func renderTypeScript(descs []*contract.Descriptor) ([]byte, error) {
	entries := make([]tsgen.Entry, 0, len(descs))
	for _, d := range descs {
		cfg, err := d.Config()
		if err != nil {
			return nil, err
		}
		entries = append(entries, tsgen.Entry{
			Identifier:        d.Pattern().Identifier(),
			Wire:              d.Pattern().String(),
			Deprecated:        cfg.Deprecated,
			DeprecatedMessage: cfg.DeprecatedMessage,
			Request:           cfg.RequestSchema,
			Response:          cfg.ResponseSchema,
		})
	}
	var buf bytes.Buffer
	if err := tsgen.Render(&buf, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
