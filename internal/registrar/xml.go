// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Params is the parameter tree of a command. Nested maps become nested
// elements, slices become repeated <item> elements.
type Params map[string]any

type Credentials struct {
	Username string
	Password string
}

// BuildRequest renders the openXML envelope for command. Map keys are written
// in sorted order so the payload is deterministic.
func BuildRequest(creds Credentials, command string, params Params) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	root := xml.StartElement{Name: xml.Name{Local: "openXML"}}

	credentials := Params{"username": creds.Username, "password": creds.Password}

	steps := []func() error{
		func() error { return enc.EncodeToken(root) },
		func() error { return writeElement(enc, "credentials", credentials, []string{"username", "password"}) },
		func() error { return writeElement(enc, command, params, nil) },
		func() error { return enc.EncodeToken(root.End()) },
		enc.Flush,
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", command, err)
		}
	}

	return buf.Bytes(), nil
}

func writeElement(enc *xml.Encoder, name string, value any, order []string) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	if err := writeValue(enc, value, order); err != nil {
		return err
	}

	return enc.EncodeToken(start.End())
}

func writeValue(enc *xml.Encoder, value any, order []string) error {
	switch v := value.(type) {
	case nil:
		return nil
	case Params:
		return writeMap(enc, v, order)
	case map[string]any:
		return writeMap(enc, v, order)
	case []Params:
		for _, item := range v {
			if err := writeElement(enc, "item", item, nil); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for _, item := range v {
			if err := writeElement(enc, "item", item, nil); err != nil {
				return err
			}
		}
		return nil
	case []string:
		for _, item := range v {
			if err := writeElement(enc, "item", item, nil); err != nil {
				return err
			}
		}
		return nil
	case string:
		return enc.EncodeToken(xml.CharData(v))
	case bool:
		if v {
			return enc.EncodeToken(xml.CharData("1"))
		}
		return enc.EncodeToken(xml.CharData("0"))
	default:
		return enc.EncodeToken(xml.CharData(fmt.Sprint(v)))
	}
}

func writeMap(enc *xml.Encoder, m map[string]any, order []string) error {
	keys := order
	if keys == nil {
		keys = make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}

	for _, k := range keys {
		if err := writeElement(enc, k, m[k], nil); err != nil {
			return err
		}
	}
	return nil
}

// Node is a generic element of a registrar response.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// Child returns the first direct child called name.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Path walks direct children, returning nil when any step is missing.
func (n *Node) Path(names ...string) *Node {
	cur := n
	for _, name := range names {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Find returns the first descendant called name, depth first.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Leaf reports whether the node carries text rather than elements.
func (n *Node) Leaf() bool {
	return n != nil && len(n.Children) == 0
}

func (n *Node) Float() (float64, bool) {
	if !n.Leaf() || n.Text == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(n.Text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (n *Node) Int() (int64, bool) {
	if !n.Leaf() || n.Text == "" {
		return 0, false
	}
	i, err := strconv.ParseInt(n.Text, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Map converts the subtree into plain maps for storage in purchase metadata.
// Repeated elements collapse into a slice.
func (n *Node) Map() map[string]any {
	if n == nil {
		return nil
	}

	out := make(map[string]any, len(n.Children))
	for _, c := range n.Children {
		var v any = c.Text
		if !c.Leaf() {
			v = c.Map()
		}

		switch existing := out[c.Name].(type) {
		case nil:
			out[c.Name] = v
		case []any:
			out[c.Name] = append(existing, v)
		default:
			out[c.Name] = []any{existing, v}
		}
	}
	return out
}

func parseNode(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var stack []*Node
	var root *Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected closing element %s", t.Name.Local)
			}
			n := stack[len(stack)-1]
			n.Text = strings.TrimSpace(n.Text)
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("empty document")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unterminated element %s", stack[len(stack)-1].Name)
	}

	return root, nil
}

// Response is the parsed reply envelope.
type Response struct {
	Code        int
	Description string
	Data        *Node
}

// ParseResponse reads <openXML><reply><code/><desc/><data/></reply></openXML>.
func ParseResponse(body []byte) (*Response, error) {
	root, err := parseNode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("malformed registrar response: %w", err)
	}

	reply := root.Child("reply")
	if reply == nil {
		reply = root
	}

	codeNode := reply.Child("code")
	if codeNode == nil {
		return nil, fmt.Errorf("malformed registrar response: missing code")
	}

	code, err := strconv.Atoi(codeNode.Text)
	if err != nil {
		return nil, fmt.Errorf("malformed registrar response: code %q", codeNode.Text)
	}

	resp := &Response{Code: code, Data: reply.Child("data")}
	if desc := reply.Child("desc"); desc != nil {
		resp.Description = desc.Text
	}

	return resp, nil
}
