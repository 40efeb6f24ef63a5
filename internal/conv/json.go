package conv

import (
	"encoding/json"
	"fmt"
)

// Convert coerces the input value into the type pointed to by outPtr via a
// JSON marshal/unmarshal round-trip. It is how tool handlers turn the untyped
// argument map of a call request into their typed argument struct.
//
// A nil input leaves outPtr's value untouched (zero value).
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	if in == nil {
		return nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("conv.Convert: marshal input: %w", err)
	}
	if err := json.Unmarshal(data, outPtr); err != nil {
		return fmt.Errorf("conv.Convert: unmarshal into %T: %w", outPtr, err)
	}
	return nil
}
