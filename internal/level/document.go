// Package level models the PvZ2 level document the generator fills in.
// Only the parts the generator touches are typed; everything else in the
// template is carried through untouched.
package level

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Object is one entry of the top-level "objects" list.
// ObjData is either a decoded template map (map[string]any with json.Number
// values) or one of the typed payloads in this package. A nil Aliases is
// omitted on output; an empty one is written as [].
type Object struct {
	Aliases  []string
	ObjClass string
	ObjData  any

	extra map[string]json.RawMessage // other keys from the template, verbatim
}

// UnmarshalJSON decodes an object, keeping numbers as json.Number and any
// keys it does not model.
func (o *Object) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Object{}
	for key, value := range raw {
		switch key {
		case "aliases":
			if isNull(value) {
				o.setExtra(key, value)
				continue
			}
			if err := json.Unmarshal(value, &o.Aliases); err != nil {
				return fmt.Errorf("aliases: %w", err)
			}
		case "objclass":
			if err := json.Unmarshal(value, &o.ObjClass); err != nil {
				return fmt.Errorf("objclass: %w", err)
			}
		case "objdata":
			dec := json.NewDecoder(bytes.NewReader(value))
			dec.UseNumber()
			if err := dec.Decode(&o.ObjData); err != nil {
				return fmt.Errorf("objdata: %w", err)
			}
		default:
			o.setExtra(key, value)
		}
	}
	return nil
}

// MarshalJSON encodes the object with sorted keys.
func (o Object) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(o.extra)+3)
	for k, v := range o.extra {
		out[k] = v
	}
	if o.Aliases != nil {
		out["aliases"] = o.Aliases
	}
	out["objclass"] = o.ObjClass
	out["objdata"] = o.ObjData
	return marshal(out)
}

func (o *Object) setExtra(key string, value json.RawMessage) {
	if o.extra == nil {
		o.extra = make(map[string]json.RawMessage)
	}
	o.extra[key] = append(json.RawMessage(nil), value...)
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// Document is a level file: an ordered object list, a version marker and any
// other top-level fields the template carried.
type Document struct {
	Objects []Object
	Version int

	extra map[string]json.RawMessage
}

// Parse decodes a level document. Numbers inside objects are kept as
// json.Number so re-encoding does not alter them.
func Parse(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("level: decode document: %w", err)
	}

	doc := &Document{extra: make(map[string]json.RawMessage)}
	for key, raw := range top {
		switch key {
		case "objects":
			if err := json.Unmarshal(raw, &doc.Objects); err != nil {
				return nil, fmt.Errorf("level: decode objects: %w", err)
			}
		case "version":
			if err := json.Unmarshal(raw, &doc.Version); err != nil {
				return nil, fmt.Errorf("level: decode version: %w", err)
			}
		default:
			doc.extra[key] = raw
		}
	}

	return doc, nil
}

// Load reads and parses a level document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Append adds an object to the end of the object list.
func (d *Document) Append(obj Object) {
	d.Objects = append(d.Objects, obj)
}

// MarshalJSON encodes the document with sorted top-level keys.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.extra)+2)
	for k, v := range d.extra {
		out[k] = v
	}

	objects := d.Objects
	if objects == nil {
		objects = []Object{}
	}
	out["objects"] = objects
	out["version"] = d.Version

	return marshal(out)
}

// marshal encodes v without escaping &, < and >, which the game reads
// literally.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Encode returns the document as indented JSON, the layout the game expects.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("level: encode document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFile encodes the document and writes it to path, creating parent
// directories as needed.
func WriteFile(path string, d *Document) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("level: cannot create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("level: writing %s: %w", path, err)
	}
	return nil
}
