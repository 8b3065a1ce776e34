package batch

import (
	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of a [Request] document.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	js := r.Reflect(&Request{})
	js.Title = "pathkit batch request"

	if ops, ok := js.Properties.Get("operations"); ok && ops.Items != nil {
		if op, ok := ops.Items.Properties.Get("op"); ok {
			for _, name := range Ops() {
				op.Examples = append(op.Examples, name)
			}
		}
	}

	return js
}
