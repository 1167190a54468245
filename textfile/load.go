package textfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/polytree"
	"gopkg.in/yaml.v3"
)

// ErrSyntax is flagged whenever a file is not a flat list of key/value pairs.
const ErrSyntax = polytree.TreeError("textfile: not a list of key/value pairs")

// Load reads a file, which must be a UTF-8 text file of `key: value` lines,
// and loads it as a map. An empty file yields an empty map.
//
// Lines are read as a flat YAML mapping. Values containing `: `, a ` #`, or
// starting with one of `[ { * & ! |` have to be quoted, e.g.
//
//	time: "10: 30"
//
// Unquoted text following ` #` is a comment and not part of the value.
func Load(path string) (*polytree.Map[string, string], error) {
	f, err := os.Open(path)
	if err != nil {
		tracer().Errorf("textfile: %s", err.Error())
		return nil, err
	}
	defer f.Close()
	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	tracer().Debugf("textfile: loaded %d entries from %s", m.Size(), path)
	return m, nil
}

// Read loads `key: value` lines from r as a map. Quoting rules are the same
// as for Load.
func Read(r io.Reader) (*polytree.Map[string, string], error) {
	m := polytree.NewMap[string, string]()
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrSyntax, err.Error())
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return m, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d", ErrSyntax, root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: nested value at line %d", ErrSyntax, k.Line)
		}
		m.Put(k.Value, v.Value)
	}
	return m, nil
}
