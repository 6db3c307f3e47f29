package dashapi

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/brndconsulting/nba-ui/model"
)

// The envelope contract is enforced with a JSON Schema before the typed
// decode. Only the wrapper shape is pinned down here; unknown extra fields
// anywhere in the response are allowed so an evolving backend does not break
// old clients.

//go:embed envelope.schema.json
var envelopeSchemaJSON []byte

var envelopeSchema = mustCompileEnvelopeSchema()

func mustCompileEnvelopeSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(envelopeSchemaJSON))
	if err != nil {
		log.Fatalf("embedded envelope schema is not valid JSON: %v", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("envelope.schema.json", doc); err != nil {
		log.Fatalf("error adding envelope schema resource: %v", err)
	}

	sch, err := c.Compile("envelope.schema.json")
	if err != nil {
		log.Fatalf("error compiling envelope schema: %v", err)
	}
	return sch
}

// decodeEnvelope parses and validates a raw response body. It never
// panics; anything wrong with the body comes back as a *ValidationError.
func decodeEnvelope(body []byte) (*model.Envelope, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("response is not valid JSON: %v", err)}
	}

	if err := envelopeSchema.Validate(v); err != nil {
		return nil, toValidationError(err)
	}

	var env model.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return &env, nil
}

// toValidationError converts a jsonschema failure into the client's error
// type, pointing at the deepest offending field.
func toValidationError(err error) error {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &ValidationError{Message: err.Error()}
	}

	leaf := verr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	field := ""
	if len(leaf.InstanceLocation) > 0 {
		field = "/" + strings.Join(leaf.InstanceLocation, "/")
	}
	return &ValidationError{Field: field, Message: leaf.Error()}
}
