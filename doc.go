/*
Package elementium computes character sheets from rule content.

A character is a bag of typed elements (a race, classes, feats, spells) plus
variables whose values are derived from those elements on demand. Rule content
is described once, as descriptors in a registry, and any number of characters
are built from it.

# Concept

Every descriptor is identified by its (type, id) pair. Non-variable descriptors
are plain data: a name, a description, the elements they grant and the options
they offer. Variable descriptors carry a formula, an immutable expression that
is evaluated against a character every time the variable is read. Nothing is
cached, so a character always reflects its current elements.

A variable that re-enters itself, directly or through other variables, fails
with a circular dependency error naming it, instead of recursing forever.

# Usage

Content can be written in Go with the dsl package, or loaded from YAML files:

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/elementium"
		"github.com/aretw0/elementium/pkg/domain"
	)

	func main() {
		rules, err := elementium.Load([]string{"srd.yaml"})
		if err != nil {
			log.Fatal(err)
		}

		wizard := domain.ID(domain.TypeClass, "wizard")
		c, err := rules.NewCharacter(wizard, wizard)
		if err != nil {
			log.Fatal(err)
		}

		level, err := c.GetVariable("level")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("level", level)
	}
*/
package elementium
