// Package formdata provides small helpers for turning a submitted form into
// plain Go maps.
//
// Flatten produces a single-level map: uniquely-named fields become string
// values and repeated names become []string, mirroring how form serialization
// treats checkbox groups and multi-selects. Nested additionally interprets
// "." in field names as a path into nested maps, so "address.city" lands at
// map["address"].(map[string]any)["city"].
//
// ParseForm and ParseNestedForm wrap the same helpers for *http.Request,
// guarding the media type (urlencoded or multipart) and wrapping parse
// failures in the package's sentinel errors.
//
// # Usage
//
//	import "github.com/formctl/formctl/pkg/formdata"
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		fields, err := formdata.ParseNestedForm(r)
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		// "user.email=jo@example.com&tags=a&tags=b" yields
//		// map[string]any{
//		//	"user": map[string]any{"email": "jo@example.com"},
//		//	"tags": []string{"a", "b"},
//		// }
//		_ = fields
//	}
package formdata
