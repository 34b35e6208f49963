// Package catalog holds the event and club records mirrored from the backend
// and the local caches that keep them.
package catalog

import (
	"net/url"
	"sort"
)

// Record is anything cached by a stable, backend-assigned identifier.
type Record interface {
	RecordID() int
}

// Params are list filters forwarded verbatim to the backend as query values.
type Params map[string]string

// Values converts the params to URL query values with keys in sorted order.
func (p Params) Values() url.Values {
	if len(p) == 0 {
		return nil
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	v := make(url.Values, len(p))
	for _, k := range keys {
		v.Set(k, p[k])
	}
	return v
}
