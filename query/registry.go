package query

import (
	"encoding/json"
	"fmt"
)

// ModelBuilder constructs a model instance of type T from the
// type-discriminator-stripped remainder of a JSON payload.
type ModelBuilder[T any] func(raw json.RawMessage) (T, error)

// Registry dispatches JSON model configuration to the builder registered
// for its "type" field (spec §6: "recognized top-level keys for model
// selection use a type discriminator consumed then removed before
// deserialization of model-specific fields").
type Registry[T any] struct {
	builders map[string]ModelBuilder[T]
}

// NewRegistry returns an empty Registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{builders: make(map[string]ModelBuilder[T])}
}

// Register associates typeName with builder. Registering the same
// typeName twice overwrites the earlier builder.
func (r *Registry[T]) Register(typeName string, builder ModelBuilder[T]) {
	r.builders[typeName] = builder
}

// Build reads raw's "type" field, removes it, and dispatches the remaining
// fields to the matching registered builder.
func (r *Registry[T]) Build(raw json.RawMessage) (T, error) {
	var zero T

	var discriminator struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &discriminator); err != nil {
		return zero, fmt.Errorf("query: decoding type discriminator: %w", err)
	}
	if discriminator.Type == "" {
		return zero, ErrMissingTypeField
	}

	builder, ok := r.builders[discriminator.Type]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownModelType, discriminator.Type)
	}

	stripped, err := stripType(raw)
	if err != nil {
		return zero, err
	}
	return builder(stripped)
}

// stripType re-marshals raw with its top-level "type" key removed, so
// builders can json.Unmarshal directly into their own config struct
// without an unknown-field collision on "type".
func stripType(raw json.RawMessage) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("query: decoding model fields: %w", err)
	}
	delete(fields, "type")
	out, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("query: re-encoding model fields: %w", err)
	}
	return out, nil
}
