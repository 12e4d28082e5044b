package core

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"propmeta/internal/types"
)

// site is one physical declaration contributing to a property: a field
// or an accessor method, tagged with the depth of its owning type in
// the linearized hierarchy (0 = target type).
type site struct {
	owner      string
	depth      int
	kind       types.MemberKind
	property   string
	markers    []types.Marker
	visibility types.Visibility
	override   bool
}

func (s site) isAccessor() bool {
	return s.kind == types.MemberKindGetter || s.kind == types.MemberKindIsGetter
}

// walk linearizes the contributing hierarchy of target and returns the
// declaration sites found on it, most-derived owners first. Ignored
// root types cut the walk off: their members never become candidates.
func (e Extractor) walk(set types.TypeSet, target string) ([]site, error) {
	chain, err := e.linearize(set, target)
	if err != nil {
		return nil, err
	}
	var sites []site
	for depth, desc := range chain {
		for _, field := range desc.Fields {
			if field.Static {
				continue
			}
			sites = append(sites, site{
				owner:      desc.Name,
				depth:      depth,
				kind:       types.MemberKindField,
				property:   field.Name,
				markers:    field.Markers,
				visibility: field.Visibility,
			})
		}
		for _, method := range desc.Methods {
			property, kind, ok := accessorProperty(method)
			if !ok {
				continue
			}
			sites = append(sites, site{
				owner:      desc.Name,
				depth:      depth,
				kind:       kind,
				property:   property,
				markers:    method.Markers,
				visibility: method.Visibility,
				override:   method.Override,
			})
		}
	}
	if err := validateOverrideClaims(chain); err != nil {
		return nil, err
	}
	return sites, nil
}

// linearize produces the contributing ancestor list: the target type,
// superclasses nearest to farthest, then every interface reachable from
// a class in that chain, in discovery order. Ignored roots terminate
// the class chain and are skipped in the interface graph.
func (e Extractor) linearize(set types.TypeSet, target string) ([]types.TypeDescription, error) {
	var classes []types.TypeDescription
	seen := map[string]struct{}{}
	name := target
	for name != "" && !e.ignoredRoot(name) {
		if _, ok := seen[name]; ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("cyclic inheritance detected at type: %s", name))
		}
		seen[name] = struct{}{}
		desc, ok := set.Lookup(name)
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("type description references unknown type: %s", name))
		}
		classes = append(classes, desc)
		name = desc.Superclass
	}

	chain := classes
	visited := map[string]struct{}{}
	path := map[string]struct{}{}
	for _, class := range classes {
		for _, ref := range class.Interfaces {
			if err := e.collectInterfaces(set, ref, visited, path, &chain); err != nil {
				return nil, err
			}
		}
	}
	return chain, nil
}

// collectInterfaces appends ref and its transitively extended
// interfaces in pre-order. visited dedupes diamond reuse; path detects
// a genuine extension cycle.
func (e Extractor) collectInterfaces(set types.TypeSet, ref string, visited, path map[string]struct{}, chain *[]types.TypeDescription) error {
	if e.ignoredRoot(ref) {
		return nil
	}
	if _, ok := path[ref]; ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("cyclic inheritance detected at type: %s", ref))
	}
	if _, ok := visited[ref]; ok {
		return nil
	}
	desc, ok := set.Lookup(ref)
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("type description references unknown type: %s", ref))
	}
	visited[ref] = struct{}{}
	path[ref] = struct{}{}
	*chain = append(*chain, desc)
	for _, extended := range desc.Interfaces {
		if err := e.collectInterfaces(set, extended, visited, path, chain); err != nil {
			return err
		}
	}
	delete(path, ref)
	return nil
}

// validateOverrideClaims checks that every method declared as an
// override actually shadows a same-named method further up the chain.
// A violation means the upstream introspection broke its contract.
func validateOverrideClaims(chain []types.TypeDescription) error {
	for depth, desc := range chain {
		for _, method := range desc.Methods {
			if !method.Override {
				continue
			}
			if !hasAncestorMethod(chain, depth+1, method.Name) {
				return errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("method %s.%s declared as override without an ancestor declaration", desc.Name, method.Name))
			}
		}
	}
	return nil
}

func hasAncestorMethod(chain []types.TypeDescription, from int, name string) bool {
	for _, desc := range chain[from:] {
		for _, method := range desc.Methods {
			if method.Name == name {
				return true
			}
		}
	}
	return false
}

// accessorProperty reports the property a method declares, if any: a
// zero-argument non-void getX for any return type, or isX only where
// the return type is boolean-like. Anything else is not a candidate.
func accessorProperty(method types.MethodDecl) (string, types.MemberKind, bool) {
	if method.ParamCount != 0 || isVoidType(method.ReturnType) {
		return "", "", false
	}
	if rest, ok := strings.CutPrefix(method.Name, "get"); ok && leadingUpper(rest) {
		return decapitalize(rest), types.MemberKindGetter, true
	}
	if rest, ok := strings.CutPrefix(method.Name, "is"); ok && leadingUpper(rest) && isBooleanType(method.ReturnType) {
		return decapitalize(rest), types.MemberKindIsGetter, true
	}
	return "", "", false
}

func isVoidType(name string) bool {
	switch name {
	case "", "void", "Void":
		return true
	default:
		return false
	}
}

func isBooleanType(name string) bool {
	switch name {
	case "bool", "boolean", "Boolean":
		return true
	default:
		return false
	}
}

func leadingUpper(value string) bool {
	for _, r := range value {
		return unicode.IsUpper(r)
	}
	return false
}

// decapitalize follows the bean naming rule: the leading rune is
// lowered unless the first two runes are both upper case (getURL
// stays URL).
func decapitalize(value string) string {
	runes := []rune(value)
	if len(runes) == 0 {
		return value
	}
	if len(runes) > 1 && unicode.IsUpper(runes[0]) && unicode.IsUpper(runes[1]) {
		return value
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
