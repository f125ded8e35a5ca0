// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package launch

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	xglog "github.com/ManuGH/vitislaunch/internal/log"
	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed launch.schema.yaml
var schemaDoc []byte

const documentSchemaName = "LaunchDocument"

var loadSchema = sync.OnceValues(func() (*openapi3.Schema, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("load launch schema: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("launch schema is invalid: %w", err)
	}
	ref, ok := doc.Components.Schemas[documentSchemaName]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("launch schema: component %q missing", documentSchemaName)
	}
	return ref.Value, nil
})

// Validate checks doc against the launch.json schema the IDE consumes.
func Validate(ctx context.Context, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("validate launch document: nil document")
	}
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	// The schema validator walks generic JSON values, not Go structs.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("validate launch document: %w", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("validate launch document: %w", err)
	}

	if err := schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("launch document violates schema: %w", err)
	}
	xglog.FromContext(ctx).Debug().
		Str(xglog.FieldEvent, "launch.schema_ok").
		Msg("launch document matches schema")
	return nil
}
