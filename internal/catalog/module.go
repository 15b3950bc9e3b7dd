package catalog

import "go.uber.org/fx"

// Module provides the static ordering catalog.
var Module = fx.Provide(Default)
