// Package piilog redacts personal data fields in `key=value` log messages before they are written.
//
// A message such as
//
//	name=John;email=john@example.com;city=NYC;
//
// is written as
//
//	name=***;email=***;city=NYC;
//
// The Redactor does the replacement, the Formatter redacts and then renders a line template, and Handler plugs the Formatter into log/slog. GetLogger wires the three with the canonical PIIFields.
package piilog
