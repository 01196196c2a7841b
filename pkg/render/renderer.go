package render

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/vango-dev/utemplates/internal/errors"
	"github.com/vango-dev/utemplates/pkg/convert"
	"github.com/vango-dev/utemplates/pkg/node"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithPipeline sets the conversion pipeline applied to Text values.
func WithPipeline(p convert.Pipeline) Option {
	return func(r *Renderer) {
		r.pipeline = p
	}
}

// WithLogger sets the logger. If not set, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// Renderer serializes node trees to HTML. A Renderer holds no mutable
// state and is safe for concurrent use.
type Renderer struct {
	pipeline convert.Pipeline
	logger   *slog.Logger
}

// New creates a Renderer. Without WithPipeline, values pass through
// unconverted.
func New(opts ...Option) *Renderer {
	r := &Renderer{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Pipeline returns the renderer's conversion pipeline.
func (r *Renderer) Pipeline() convert.Pipeline {
	return r.pipeline
}

// Render renders input to a string. input may be a node.Node, a string,
// or a slice of nodes and strings ([]node.Node, []string, []any).
// Top-level strings are safe markup and are emitted unescaped; use
// node.Text to escape a string. On error no output is returned.
func (r *Renderer) Render(input any) (string, error) {
	nodes, err := normalize(input)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, n := range nodes {
		if err := r.renderNode(&b, n); err != nil {
			r.logger.Debug("render failed", "error", err)
			return "", err
		}
	}
	return b.String(), nil
}

// RenderTo renders input and writes it to w. Nothing is written unless the
// whole render succeeds.
func (r *Renderer) RenderTo(w io.Writer, input any) error {
	out, err := r.Render(input)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return errors.New("E400").Wrap(err)
	}
	return nil
}

// normalize turns a render input into a list of nodes.
func normalize(input any) ([]node.Node, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil
	case node.Node:
		return []node.Node{v}, nil
	case string:
		return []node.Node{node.SafeText{Value: v}}, nil
	case []node.Node:
		return v, nil
	case []node.Tag:
		nodes := make([]node.Node, len(v))
		for i, t := range v {
			nodes[i] = t
		}
		return nodes, nil
	case []string:
		nodes := make([]node.Node, len(v))
		for i, s := range v {
			nodes[i] = node.SafeText{Value: s}
		}
		return nodes, nil
	case []any:
		nodes := make([]node.Node, 0, len(v))
		for _, item := range v {
			switch it := item.(type) {
			case nil:
				continue
			case node.Node:
				nodes = append(nodes, it)
			case string:
				nodes = append(nodes, node.SafeText{Value: it})
			default:
				return nil, unsupported(item)
			}
		}
		return nodes, nil
	default:
		return nil, unsupported(input)
	}
}

func unsupported(v any) error {
	return errors.New("E303").WithDetail(fmt.Sprintf("Cannot render a value of type %T.", v))
}

// renderNode dispatches rendering based on node variant.
func (r *Renderer) renderNode(b *strings.Builder, n node.Node) error {
	switch v := n.(type) {
	case nil:
		return nil
	case node.Text:
		return r.renderText(b, v)
	case node.SafeText:
		b.WriteString(v.Value)
		return nil
	case node.Tag:
		return r.renderTag(b, v)
	case node.Group:
		return r.renderChildren(b, v.Children)
	case *node.Text:
		if v == nil {
			return nil
		}
		return r.renderText(b, *v)
	case *node.SafeText:
		if v == nil {
			return nil
		}
		b.WriteString(v.Value)
		return nil
	case *node.Tag:
		if v == nil {
			return nil
		}
		return r.renderTag(b, *v)
	case *node.Group:
		if v == nil {
			return nil
		}
		return r.renderChildren(b, v.Children)
	default:
		return unsupported(n)
	}
}

// renderText converts, stringifies and escapes a text leaf.
func (r *Renderer) renderText(b *strings.Builder, t node.Text) error {
	v, err := r.pipeline.Convert(t.Value)
	if err != nil {
		return err
	}
	b.WriteString(Escape(textOf(v)))
	return nil
}

// renderTag renders an element with its attributes and children.
func (r *Renderer) renderTag(b *strings.Builder, t node.Tag) error {
	if !validName(t.Name) {
		return errors.New("E300").WithDetail("Tag name " + quote(t.Name) + " is not a valid token.")
	}
	void := t.IsVoid()
	if void && len(t.Children) > 0 {
		return errors.New("E302").WithDetail(fmt.Sprintf("<%s> is a void element but was given %d children.", t.Name, len(t.Children)))
	}

	b.WriteByte('<')
	b.WriteString(t.Name)
	if err := writeAttributes(b, t.Attrs); err != nil {
		return err
	}
	b.WriteByte('>')
	if void {
		return nil
	}

	if err := r.renderChildren(b, t.Children); err != nil {
		return err
	}

	b.WriteString("</")
	b.WriteString(t.Name)
	b.WriteByte('>')
	return nil
}

// renderChildren renders children in order. Nested groups flatten.
func (r *Renderer) renderChildren(b *strings.Builder, children []node.Node) error {
	for _, child := range children {
		if err := r.renderNode(b, child); err != nil {
			return err
		}
	}
	return nil
}

// textOf converts a converted leaf value to its text form.
func textOf(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		if isNilPointer(v) {
			return ""
		}
		return v.String()
	case error:
		if isNilPointer(v) {
			return ""
		}
		return v.Error()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// isNilPointer reports whether v holds a nil pointer. Methods on such values
// are not called.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
