// internal/models/document.go
package models

// Document is a schemaless record in one of the pass-through collections
// (users, reviews, coupons).
type Document map[string]interface{}

// String returns the string value stored under key, or "".
func (d Document) String(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// Without returns a shallow copy of d minus the given keys.
func (d Document) Without(keys ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
