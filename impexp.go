package taxlot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DecodeDocument reads a single JSON document, typically an exchange or
// explorer export, and decodes the transactions selected by the JSONPath
// expression path, e.g. "$.result[*]". A path selecting a single object
// yields one transaction.
func DecodeDocument(r io.Reader, path string) ([]Transaction, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep decimal digits intact
	var jdoc any
	if err := dec.Decode(&jdoc); err != nil {
		return nil, fmt.Errorf("not a correct json document: %w", err)
	}

	jval, err := jsonpath.Get(path, jdoc)
	if err != nil {
		return nil, fmt.Errorf("cannot select %q: %w", path, err)
	}

	var records []any
	switch v := jval.(type) {
	case []any:
		records = v
	case map[string]any:
		records = []any{v}
	default:
		return nil, fmt.Errorf("selection %q is neither an object nor a list of objects: %T", path, jval)
	}

	txs := make([]Transaction, 0, len(records))
	for i, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		var tx Transaction
		if err := json.Unmarshal(raw, &tx); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
