package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/getkin/kin-openapi/openapi3"

	"candydelivery/internal/pkg/errs"
)

// SchemaValidator checks request payloads against the component schemas of the
// OpenAPI document before they are decoded into generated types.
type SchemaValidator struct {
	schemas openapi3.Schemas
}

// NewSchemaValidator creates a validator over the components of doc.
//
// Example:
//
//	doc, _ := api.Load()
//	validator := NewSchemaValidator(doc)
//
//	var request servers.OrdersAssignPostRequest
//	if err := validator.DecodeBody(body, "OrdersAssignPostRequest", &request); err != nil {
//	    // errs.IsValidation(err) == true
//	}
func NewSchemaValidator(doc *openapi3.T) *SchemaValidator {
	return &SchemaValidator{schemas: doc.Components.Schemas}
}

// DecodeBody reads a JSON document, validates it against schemaName and decodes it
// into target. Malformed JSON and schema violations are ValueIsInvalidErrors.
func (v *SchemaValidator) DecodeBody(body io.Reader, schemaName string, target any) error {
	raw, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	var value any
	if err = json.Unmarshal(raw, &value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	if err = v.Validate(schemaName, value); err != nil {
		return err
	}

	return decodeStrict(raw, target)
}

// DecodeRecord validates one already parsed record and decodes it into target.
func (v *SchemaValidator) DecodeRecord(schemaName string, record map[string]interface{}, target any) error {
	if err := v.Validate(schemaName, record); err != nil {
		return err
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return decodeStrict(raw, target)
}

// Validate checks a value produced by encoding/json against schemaName.
// Every violation is reported, not only the first one.
func (v *SchemaValidator) Validate(schemaName string, value any) error {
	ref, ok := v.schemas[schemaName]
	if !ok || ref.Value == nil {
		return fmt.Errorf("schema %q is not defined", schemaName)
	}

	if err := ref.Value.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(schemaName, err)
	}

	return nil
}

// decodeStrict decodes raw into target and fails on fields target does not declare.
func decodeStrict(raw []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	return nil
}
