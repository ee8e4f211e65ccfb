//go:build gojson

package cardkit_test

import (
	"github.com/reoring/cardkit"
	drv "github.com/reoring/cardkit/source/gojson"
)

func init() {
	cardkit.SetJSONDriver(drv.Driver())
}
