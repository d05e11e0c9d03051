package internalcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// checkedPackages are the packages that handle key material.
var checkedPackages = []string{
	"github.com/leafn/paillier/pkg/paillier",
	"github.com/leafn/paillier/pkg/keyshare",
}

const typedMode = packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName

func loadChecked(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	pkgs, err := packages.Load(&packages.Config{Mode: mode}, checkedPackages...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages contain errors")
	}
	return pkgs
}

// visitor inspects one node and returns a non-empty message for a violation.
type visitor func(pkg *packages.Package, n ast.Node) (token.Pos, string)

// runPolicy walks every file of the checked packages and fails the test with
// all findings reported by visit.
func runPolicy(t *testing.T, policy string, mode packages.LoadMode, visit visitor) {
	t.Helper()
	var findings []string
	for _, pkg := range loadChecked(t, mode) {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				if n == nil {
					return true
				}
				if pos, msg := visit(pkg, n); msg != "" {
					findings = append(findings, fmt.Sprintf("%s: %s", pkg.Fset.Position(pos), msg))
				}
				return true
			})
		}
	}
	if len(findings) > 0 {
		t.Fatalf("%s policy violation:\n%s", policy, strings.Join(findings, "\n"))
	}
}

// calleeOf resolves a pkg.Func or recv.Method call to its package path and name.
func calleeOf(pkg *packages.Package, call *ast.CallExpr) (path, name string, ok bool) {
	sel, isSel := call.Fun.(*ast.SelectorExpr)
	if !isSel {
		return "", "", false
	}
	obj := pkg.TypesInfo.Uses[sel.Sel]
	if obj == nil || obj.Pkg() == nil {
		return "", "", false
	}
	return obj.Pkg().Path(), obj.Name(), true
}
