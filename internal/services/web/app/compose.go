package app

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	module "github.com/aiml-healthguard/healthguard/internal/services/web/module"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/requestmeta"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
	webhttp "github.com/aiml-healthguard/healthguard/internal/services/web/transport/http"
	"github.com/aiml-healthguard/healthguard/internal/services/web/transport/httpmux"
)

const staticOwner = "static"

// ComposeInput carries the modules and shared composition contracts.
type ComposeInput struct {
	Modules             []module.Module
	StaticFS            fs.FS
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from modules and static assets. Every
// module is wrapped so unsafe methods require same-origin proof.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	if input.StaticFS != nil {
		seen[routepath.StaticPrefix] = staticOwner
		httpmux.MountStatic(root, input.StaticFS, webhttp.WithStaticMime)
	}

	wrap := requestmeta.RequireSameOrigin(input.RequestSchemePolicy, nil)
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		if err := mountModule(root, feature, seen, wrap); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	for _, claimed := range []string{prefix, httpmux.SlashlessAlias(prefix)} {
		if claimed == "" {
			continue
		}
		if previous, ok := seen[claimed]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), claimed, previous)
		}
		seen[claimed] = feature.ID()
	}

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	httpmux.MountPrefix(root, prefix, handler)
	log.WithFields(log.Fields{"module": feature.ID(), "prefix": prefix}).Debug("mounted module")
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}
