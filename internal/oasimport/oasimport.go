// Package oasimport lists the operations of an OpenAPI 3 document so they can
// be scaffolded one by one.
//
// Overview:
//   - Responsibility: Load and validate a document, extract (method, operationId) pairs
//   - Key Types: Operation, Report
//   - Concurrency Model: Stateless; each Load call owns its loader
//   - Error Semantics: NOT_FOUND for a missing file, INVALID_ARGUMENT for a bad document
//
// Usage:
//
//	report, err := oasimport.Load(ctx, "openapi.yaml")
//	for _, op := range report.Operations { ... }
package oasimport

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"go.eggybyte.com/egg/apigen/internal/errors"
)

// Operation is one operation of the document.
type Operation struct {
	Method      string // lower-case HTTP method
	Path        string // path template as written in the document
	OperationID string
}

// Report is the outcome of reading a document.
type Report struct {
	Title      string
	Operations []Operation // operations with an operationId, sorted by path then method
	Unnamed    []Operation // operations without an operationId
}

// Load reads the document at path and extracts its operations.
func Load(ctx context.Context, path string) (*Report, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.CodeNotFound, path, err, "OpenAPI document not found")
		}
		return nil, errors.Wrapf(errors.CodeInternal, path, err, "stat OpenAPI document")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.CodeInvalidArgument, path, err, "parse OpenAPI document")
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, errors.Wrapf(errors.CodeInvalidArgument, path, err, "invalid OpenAPI document")
	}

	return FromDocument(doc), nil
}

// FromDocument extracts the operations of an already loaded document.
func FromDocument(doc *openapi3.T) *Report {
	report := &Report{}
	if doc.Info != nil {
		report.Title = doc.Info.Title
	}
	if doc.Paths == nil {
		return report
	}

	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			entry := Operation{
				Method:      strings.ToLower(method),
				Path:        path,
				OperationID: strings.TrimSpace(op.OperationID),
			}
			if entry.OperationID == "" {
				report.Unnamed = append(report.Unnamed, entry)
				continue
			}
			report.Operations = append(report.Operations, entry)
		}
	}

	sortOperations(report.Operations)
	sortOperations(report.Unnamed)
	return report
}

func sortOperations(ops []Operation) {
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Path != ops[j].Path {
			return ops[i].Path < ops[j].Path
		}
		return ops[i].Method < ops[j].Method
	})
}
