// Package source selects go-json as the default JSON driver when imported for
// its side effect:
//
//	import _ "github.com/reoring/cardkit/source"
package source

import (
	"github.com/reoring/cardkit"
	drvgojson "github.com/reoring/cardkit/source/gojson"
)

// init lives in a separate package to avoid an import cycle with the root.
func init() { cardkit.SetJSONDriver(drvgojson.Driver()) }
