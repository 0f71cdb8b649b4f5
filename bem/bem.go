// Package bem splits class names into BEM (Block__Element--Modifier) components.
package bem

import "regexp"

// The three captures are independent searches over the same string, not a
// single structured parse: block is anchored at the start, element is the
// first occurrence anywhere, modifier is anchored at the end. Markers are
// kept in the captured text since nested SCSS selectors need them verbatim.
var (
	blockPattern    = regexp.MustCompile(`^[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`)
	elementPattern  = regexp.MustCompile(`__[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`)
	modifierPattern = regexp.MustCompile(`--[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*$`)
)

// Components is the result of splitting a single class name. Element and
// Modifier include their leading "__" and "--" markers. The zero value
// represents a class that does not follow the naming convention at all.
type Components struct {
	Block    string
	Element  string
	Modifier string
}

// Valid reports whether the class carried at least a block name. Classes
// without one are to be skipped by the caller.
func (c Components) Valid() bool {
	return c.Block != ""
}

// Parse splits one class name into BEM components. A class that does not
// start with a block run is returned as the zero value. When the element
// capture would start after the modifier capture the modifier is dropped:
// such a token cannot be read left to right as block-element-modifier.
// (The character classes make this unreachable in practice - a modifier
// capture cannot contain the "__" marker - the guard pins the invariant.)
func Parse(class string) Components {
	block := blockPattern.FindString(class)
	if block == "" {
		return Components{}
	}

	c := Components{Block: block}

	elLoc := elementPattern.FindStringIndex(class)
	if elLoc != nil {
		c.Element = class[elLoc[0]:elLoc[1]]
	}

	modLoc := modifierPattern.FindStringIndex(class)
	if modLoc != nil && (elLoc == nil || elLoc[0] < modLoc[0]) {
		c.Modifier = class[modLoc[0]:modLoc[1]]
	}
	return c
}
