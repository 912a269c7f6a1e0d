//go:build unit || e2e

package testutil

// Field sets key to value on a DtoMap; a nil value drops the key so the
// request omits it.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
