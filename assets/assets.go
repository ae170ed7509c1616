// Package assets bundles the default document templates shipped with the
// service.
package assets

import _ "embed"

// DefaultTemplate is the bundled CTE weekly lesson-plan template. It is
// the fallback for every template lookup that cannot be satisfied from
// storage.
//
//go:embed cte_weekly_template.docx
var DefaultTemplate []byte
