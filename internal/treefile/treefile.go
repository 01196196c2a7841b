// Package treefile decodes JSON tree documents.
//
// A document is a node or an array of nodes. A node is one of:
//
//	"plain text"                              Text
//	{"text": 42}                              Text with a non-string value
//	{"safe": "<b>trusted</b>"}                SafeText
//	{"group": [ ... ]}                        Group
//	{"doctype": "html"}                       doctype declaration
//	{"comment": "note"}                       comment
//	{"tag": "a",
//	 "attrs": [["href", "/"], ["hidden", true], ["title", null]],
//	 "children": [ ... ]}                     Tag
//
// Attributes are [key, value] pairs so their order survives decoding.
// A null value is absent, a boolean is a flag, a number is written as text.
package treefile

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/vango-dev/utemplates/internal/errors"
	"github.com/vango-dev/utemplates/pkg/node"
)

var kindKeys = []string{"tag", "text", "safe", "group", "doctype", "comment"}

// Load reads and decodes the document at path.
func Load(path string) ([]node.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E402").WithPath(path).Wrap(err)
	}
	nodes, err := Decode(data)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) && e.Path != "" {
			e.Path = path + ":" + e.Path
		}
		return nil, err
	}
	return nodes, nil
}

// Read decodes the document read from r.
func Read(r io.Reader) ([]node.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("E402").Wrap(err)
	}
	return Decode(data)
}

// Decode decodes a document.
func Decode(data []byte) ([]node.Node, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, invalid("$", "empty document")
	}
	if data[0] == '[' {
		return decodeList(data, "$")
	}
	n, err := decodeNode(data, "$")
	if err != nil {
		return nil, err
	}
	return []node.Node{n}, nil
}

func decodeList(raw json.RawMessage, path string) ([]node.Node, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, invalid(path, "expected an array of nodes").Wrap(err)
	}
	nodes := make([]node.Node, 0, len(items))
	for i, item := range items {
		n, err := decodeNode(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeNode(raw json.RawMessage, path string) (node.Node, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, invalid(path, "malformed string").Wrap(err)
		}
		return node.Text{Value: s}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, invalid(path, "expected a string or an object")
	}

	kind := ""
	for _, k := range kindKeys {
		if _, ok := obj[k]; ok {
			if kind != "" {
				return nil, invalid(path, fmt.Sprintf("both %q and %q present", kind, k))
			}
			kind = k
		}
	}
	for k := range obj {
		if k == kind || (kind == "tag" && (k == "attrs" || k == "children")) {
			continue
		}
		return nil, invalid(path, fmt.Sprintf("unexpected key %q", k))
	}

	switch kind {
	case "tag":
		return decodeTag(obj, path)
	case "text":
		v, err := decodeScalar(obj["text"])
		if err != nil {
			return nil, invalid(path+".text", err.Error())
		}
		return node.Text{Value: v}, nil
	case "safe":
		s, err := decodeString(obj["safe"], path+".safe")
		if err != nil {
			return nil, err
		}
		return node.Raw(s), nil
	case "group":
		children, err := decodeList(obj["group"], path+".group")
		if err != nil {
			return nil, err
		}
		return node.GroupOf(children...), nil
	case "doctype":
		s, err := decodeString(obj["doctype"], path+".doctype")
		if err != nil {
			return nil, err
		}
		return node.Doctype(s), nil
	case "comment":
		s, err := decodeString(obj["comment"], path+".comment")
		if err != nil {
			return nil, err
		}
		return node.Comment(s), nil
	default:
		return nil, invalid(path, "object has no node kind")
	}
}

func decodeTag(obj map[string]json.RawMessage, path string) (node.Node, error) {
	name, err := decodeString(obj["tag"], path+".tag")
	if err != nil {
		return nil, err
	}
	tag := node.Tag{Name: name}

	if raw, ok := obj["attrs"]; ok {
		var pairs []json.RawMessage
		if err := json.Unmarshal(raw, &pairs); err != nil {
			return nil, invalid(path+".attrs", "expected an array of [key, value] pairs")
		}
		attrs := make([]node.Attr, 0, len(pairs))
		for i, p := range pairs {
			a, err := decodeAttr(p, fmt.Sprintf("%s.attrs[%d]", path, i))
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, a)
		}
		tag.Attrs = node.NewAttrs(attrs...)
	}

	if raw, ok := obj["children"]; ok {
		children, err := decodeList(raw, path+".children")
		if err != nil {
			return nil, err
		}
		tag.Children = children
	}
	return tag, nil
}

func decodeAttr(raw json.RawMessage, path string) (node.Attr, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
		return node.Attr{}, invalid(path, "expected a [key, value] pair")
	}
	key, err := decodeString(pair[0], path+"[0]")
	if err != nil {
		return node.Attr{}, err
	}
	v, err := decodeScalar(pair[1])
	if err != nil {
		return node.Attr{}, invalid(path+"[1]", err.Error())
	}
	return node.A_(key, v), nil
}

func decodeString(raw json.RawMessage, path string) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", invalid(path, "expected a string")
	}
	return s, nil
}

// decodeScalar decodes a JSON scalar. Integers become int64, other numbers
// float64.
func decodeScalar(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case nil, string, bool:
		return x, nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("expected a scalar, got %T", v)
	}
}

func invalid(path, detail string) *errors.Error {
	return errors.New("E304").WithPath(path).WithDetail(detail)
}
