//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Medicine is a catalog entry for a tracked medicine. Read-only; the catalog
// is maintained server-side.
type Medicine struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	GenericName string `json:"generic_name"`
	Category    string `json:"category"`
	PackSize    string `json:"pack_size"`
	Unit        string `json:"unit"`
}
