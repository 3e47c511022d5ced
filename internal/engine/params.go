// internal/engine/params.go
package engine

// Flat parameter objects arrive as decoded JSON, so numbers are float64 and
// everything is optional until the schema says otherwise. These helpers read
// values permissively; the schema has already rejected wrong types.

func stringParam(params map[string]interface{}, name string) string {
	if v, ok := params[name].(string); ok {
		return v
	}
	return ""
}

func stringPtrParam(params map[string]interface{}, name string) *string {
	if v, ok := params[name].(string); ok {
		return &v
	}
	return nil
}

func intParam(params map[string]interface{}, name string) int {
	switch v := params[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func floatParam(params map[string]interface{}, name string) float64 {
	switch v := params[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func floatPtrParam(params map[string]interface{}, name string) *float64 {
	switch v := params[name].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func boolPtrParam(params map[string]interface{}, name string) *bool {
	if v, ok := params[name].(bool); ok {
		return &v
	}
	return nil
}
