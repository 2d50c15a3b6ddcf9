// Package jsontree converts JSON text into tree.Value documents using
// goccy/go-json as the tokenizer. Object member order and exact number
// literals are preserved; interpretation is left to the decoders.
package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	"github.com/reoring/treedec/tree"
)

// Parse reads a single JSON document from b.
func Parse(b []byte) (tree.Value, error) { return Read(bytes.NewReader(b)) }

// Read reads a single JSON document from r. Trailing content after the
// first document is rejected.
func Read(r io.Reader) (tree.Value, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	v, err := readValue(dec)
	if err != nil {
		return tree.Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return tree.Value{}, fmt.Errorf("jsontree: trailing content after document")
	}
	return v, nil
}

func readValue(dec *j.Decoder) (tree.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return tree.Value{}, io.ErrUnexpectedEOF
		}
		return tree.Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *j.Decoder, tok j.Token) (tree.Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		}
		return tree.Value{}, fmt.Errorf("jsontree: unexpected delimiter %q", t.String())
	case string:
		return tree.String(t), nil
	case bool:
		return tree.Bool(t), nil
	case j.Number:
		return tree.Number(json.Number(t)), nil
	case float64:
		return tree.NumberFloat(t), nil
	case nil:
		return tree.Null(), nil
	}
	return tree.Value{}, fmt.Errorf("jsontree: unexpected token %T", tok)
}

func readObject(dec *j.Decoder) (tree.Value, error) {
	var members []tree.Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return tree.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return tree.Value{}, fmt.Errorf("jsontree: object key is %T, not string", keyTok)
		}
		val, err := readValue(dec)
		if err != nil {
			return tree.Value{}, err
		}
		members = append(members, tree.Field(key, val))
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return tree.Value{}, err
	}
	return tree.Object(members...), nil
}

func readArray(dec *j.Decoder) (tree.Value, error) {
	var items []tree.Value
	for dec.More() {
		v, err := readValue(dec)
		if err != nil {
			return tree.Value{}, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil {
		return tree.Value{}, err
	}
	return tree.Array(items...), nil
}
