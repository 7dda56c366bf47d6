// Package records decodes the extracted-transcript documents produced by
// the external extraction collaborator. Input is validated against an
// embedded JSON Schema before decoding; individual course entries are
// never rejected here — a useless entry simply ends up unmatched later.
package records

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mfajardo/transmalla/internal/reconcile"
)

// Document is one student's extraction output.
type Document struct {
	Student Student                     `json:"student"`
	Courses []reconcile.CompletedRecord `json:"courses"`
}

// Student is the identity pair read from the transcript header.
type Student struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Parse validates raw JSON against the records schema and decodes it.
func Parse(data []byte) (*Document, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode records document: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and parses a records document from disk.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
