// Package query assembles a ready-to-run search.Instance from
// already-parsed model configuration, and renders search/map-matching
// results back out to the external interfaces described in spec §6:
// summary operations, and the json/edge_id/wkt/geo_json output formats.
package query

import "errors"

// ErrUnknownModelType is returned by the registry when a query names a
// "type" discriminator no builder has been registered for.
var ErrUnknownModelType = errors.New("query: unknown model type")

// ErrMissingTypeField is returned when a model configuration payload has no
// "type" discriminator to dispatch on.
var ErrMissingTypeField = errors.New("query: missing \"type\" field")

// ErrUnsupportedOutputFormat is returned by FormatRoute for an
// OutputFormat value FormatRoute does not recognize.
var ErrUnsupportedOutputFormat = errors.New("query: unsupported output format")

// ErrEmptyTrace is returned when a MapMatchingQuery's trace is empty (spec
// §6: "Empty trace ⇒ validation error").
var ErrEmptyTrace = errors.New("query: empty trace")
