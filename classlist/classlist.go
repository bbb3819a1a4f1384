/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package classlist manipulates class-name attributes: space-separated sets of tokens.
package classlist

import "strings"

// Element is anything that carries a class-name attribute.
type Element interface {
	ClassName() string
	SetClassName(className string)
}

// Node is a minimal Element.
type Node struct {
	Class string
}

var _ Element = (*Node)(nil)

// ClassName implements Element.
func (n *Node) ClassName() string {
	return n.Class
}

// SetClassName implements Element.
func (n *Node) SetClassName(className string) {
	n.Class = className
}

// Tokens returns the class names of el in order.
func Tokens(el Element) []string {
	return strings.Fields(el.ClassName())
}

// Has reports whether el has the class name.
func Has(el Element, className string) bool {
	if className == "" {
		return false
	}
	for _, token := range Tokens(el) {
		if token == className {
			return true
		}
	}
	return false
}

// Add appends the class name unless el already has it.
func Add(el Element, className string) {
	if className == "" || Has(el, className) {
		return
	}
	if current := el.ClassName(); current != "" {
		el.SetClassName(current + " " + className)
		return
	}
	el.SetClassName(className)
}

// Remove drops every occurrence of the class name. Remaining tokens are joined with single spaces.
func Remove(el Element, className string) {
	if !Has(el, className) {
		return
	}
	tokens := Tokens(el)
	kept := tokens[:0]
	for _, token := range tokens {
		if token != className {
			kept = append(kept, token)
		}
	}
	el.SetClassName(strings.Join(kept, " "))
}

// Toggle removes the class name if el has it and adds it otherwise.
// It reports whether el has the class name afterwards.
func Toggle(el Element, className string) bool {
	if el == nil || className == "" {
		return false
	}
	if Has(el, className) {
		Remove(el, className)
		return false
	}
	Add(el, className)
	return true
}
