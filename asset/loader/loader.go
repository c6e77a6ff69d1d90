package loader

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/kaptinlin/jsonschema"
	"github.com/viant/afs"
	"github.com/viant/baiwen/asset"
)

//go:embed record.schema.json
var recordSchema []byte

// ErrInvalidDocument is wrapped by every decode or shape failure.
var ErrInvalidDocument = errors.New("invalid asset document")

// Service loads asset records.
type Service struct {
	fs     afs.Service
	schema *jsonschema.Schema
}

// Load reads the whole document at URL and returns its records.
func (s *Service) Load(ctx context.Context, URL string) ([]asset.Record, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("read asset document %q: %w", URL, err)
	}
	return s.Decode(data)
}

// Decode converts a document into records.  Member names are matched
// case-sensitively; members other than the record fields are ignored.
func (s *Service) Decode(data []byte) ([]asset.Record, error) {
	var records []asset.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	result := s.schema.ValidateJSON(data)
	if !result.IsValid() {
		return nil, fmt.Errorf("%w: schema validation failed: %v", ErrInvalidDocument, result.Errors)
	}
	return records, nil
}

// New creates a loader with the default afs service.
func New() (*Service, error) {
	return NewWithFS(afs.New())
}

// NewWithFS creates a loader reading through the supplied afs service.
func NewWithFS(fs afs.Service) (*Service, error) {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(recordSchema)
	if err != nil {
		return nil, fmt.Errorf("compile record schema: %w", err)
	}
	return &Service{fs: fs, schema: schema}, nil
}
