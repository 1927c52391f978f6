// Copyright © 2025 The pyvet authors

package check

import (
	"strings"

	"github.com/tjkuson/pyvet/syntax"
)

// aliasIgnoreList holds private names that are conventional to import:
// package versions as __version__ and translation functions as _.
var aliasIgnoreList = map[string]bool{
	"__version__": true,
	"_":           true,
}

// RulePrivateImport flags imports of private names: names starting with an
// underscore are not part of a module's public API and may change without
// notice.
//
// The module-name check is skipped for relative imports, for the reserved
// __future__/__main__ modules, and for imports from the file's own package
// (private names are fair game inside the package that defines them). The
// per-alias check runs regardless of the module-name exemptions; a single
// statement can yield a module diagnostic plus one diagnostic per flagged
// alias.
var RulePrivateImport = &Rule{
	Name:     "private-import",
	Doc:      "Flag imports of private (underscore-prefixed) names.\n\nNames starting with an underscore are private by convention and are not part of a module's public API. Importing them couples the importer to implementation details that may change in any release. Imports from within the same package are exempt.",
	Severity: SeverityWarning,
	Node:     privateImportNode,
}

func privateImportNode(pass *Pass, node *syntax.Node) {
	if node.Kind != syntax.KindImportFrom {
		return
	}
	// Relative imports are not a public API boundary.
	if node.Level > 0 {
		return
	}
	module := node.Module
	if module == "" {
		return
	}

	if name, ok := privateModuleSegment(pass, module); ok {
		pass.Reportf(node.Range, "imported private name `%s`", name)
	}

	for _, a := range node.Names {
		if aliasIgnoreList[a.Name] {
			continue
		}
		if strings.HasPrefix(a.Name, "_") {
			pass.Reportf(a.Range, "imported private name `%s`", a.Name)
		}
	}
}

// privateModuleSegment returns the leftmost underscore-prefixed segment of
// the module path, if the module-name check applies and one exists.
func privateModuleSegment(pass *Pass, module string) (string, bool) {
	if strings.HasPrefix(module, "__future__") || strings.HasPrefix(module, "__main__") {
		return "", false
	}
	// Importing private names from the file's own package is allowed.
	if pkg := pass.File.Package; len(pkg) > 0 && pkg[0] != "" && strings.HasPrefix(module, pkg[0]) {
		return "", false
	}
	// Fast substring pre-filter; the segment split below confirms that the
	// underscore actually starts a path component.
	if !strings.HasPrefix(module, "_") && !strings.Contains(module, "._") {
		return "", false
	}
	for _, segment := range strings.Split(module, ".") {
		if strings.HasPrefix(segment, "_") {
			return segment, true
		}
	}
	return module, true
}
