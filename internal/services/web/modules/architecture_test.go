package modules

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"

	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

var featureAreas = []string{"public", "heart", "scan"}

func TestFeatureModulesDoNotImportSiblingModules(t *testing.T) {
	t.Parallel()

	entries, err := filepath.Glob(filepath.Join("*", "*.go"))
	if err != nil {
		t.Fatalf("glob module files: %v", err)
	}
	fset := token.NewFileSet()
	for _, file := range entries {
		parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse imports for %s: %v", file, err)
		}
		for _, imp := range parsed.Imports {
			path := strings.Trim(imp.Path.Value, "\"")
			if strings.Contains(path, "/internal/services/web/modules/") {
				t.Fatalf("file %s imports sibling module path %q", file, path)
			}
		}
	}
}

func TestRoutePrefixesRemainUniqueConstants(t *testing.T) {
	t.Parallel()

	prefixes := []string{
		routepath.Root,
		routepath.AssessPrefix,
		routepath.AssessHeartPrefix,
		routepath.StaticPrefix,
	}
	seen := map[string]struct{}{}
	for _, prefix := range prefixes {
		if _, ok := seen[prefix]; ok {
			t.Fatalf("duplicate route prefix constant %q", prefix)
		}
		seen[prefix] = struct{}{}
	}
}

func TestFeatureModulesFollowTemplate(t *testing.T) {
	t.Parallel()

	requiredFiles := []string{"module.go", "routes.go", "routes_test.go", "handlers.go", "service.go"}
	for _, area := range featureAreas {
		for _, file := range requiredFiles {
			path := filepath.Join(area, file)
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("module %q missing required file %q: %v", area, file, err)
			}
		}
	}
}

func TestModuleMountDoesNotBuildModelClients(t *testing.T) {
	t.Parallel()

	for _, area := range featureAreas {
		assertMountDoesNotReference(t, filepath.Join(area, "module.go"), "inference")
	}
}

func TestFeatureModulesImplementModuleContract(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go tool")
	}
	t.Parallel()

	config := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedDeps | packages.NeedImports,
		Dir:  ".",
	}
	contractPkgs, err := packages.Load(config, "../module")
	if err != nil {
		t.Fatalf("load module contract package: %v", err)
	}
	if packages.PrintErrors(contractPkgs) > 0 || len(contractPkgs) == 0 {
		t.Fatalf("module contract package load errors")
	}
	contract := lookupInterface(t, contractPkgs[0], "Module")

	patterns := make([]string, 0, len(featureAreas))
	for _, area := range featureAreas {
		patterns = append(patterns, "./"+area)
	}
	areaPkgs, err := packages.Load(config, patterns...)
	if err != nil {
		t.Fatalf("load feature modules: %v", err)
	}
	if packages.PrintErrors(areaPkgs) > 0 {
		t.Fatalf("feature module load errors")
	}
	if len(areaPkgs) != len(featureAreas) {
		t.Fatalf("loaded %d feature packages, want %d", len(areaPkgs), len(featureAreas))
	}
	for _, pkg := range areaPkgs {
		obj := pkg.Types.Scope().Lookup("Module")
		if obj == nil {
			t.Fatalf("package %s does not declare Module", pkg.PkgPath)
		}
		if !types.Implements(obj.Type(), contract) {
			t.Fatalf("%s.Module does not implement module.Module", pkg.PkgPath)
		}
	}
}

func lookupInterface(t *testing.T, pkg *packages.Package, name string) *types.Interface {
	t.Helper()

	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		t.Fatalf("type %s not found in %s", name, pkg.PkgPath)
	}
	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		t.Fatalf("%s.%s is not an interface", pkg.PkgPath, name)
	}
	return iface
}

func assertMountDoesNotReference(t *testing.T, moduleFile string, forbiddenPackage string) {
	t.Helper()

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, moduleFile, nil, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("parse module file %s: %v", moduleFile, err)
	}

	for _, decl := range parsed.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Name == nil || fn.Name.Name != "Mount" || fn.Body == nil {
			continue
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			if ident, ok := sel.X.(*ast.Ident); ok && ident.Name == forbiddenPackage {
				t.Fatalf("%s Mount references %s.%s; wire gateways in the registry instead", moduleFile, forbiddenPackage, sel.Sel.Name)
			}
			return true
		})
		return
	}

	t.Fatalf("module file %s missing Mount function", moduleFile)
}
