package app

import (
	"io/fs"

	module "github.com/aiml-healthguard/healthguard/internal/services/web/module"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules             []module.Module
	StaticFS            fs.FS
	RequestSchemePolicy requestmeta.SchemePolicy
}
