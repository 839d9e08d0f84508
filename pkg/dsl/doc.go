/*
Package dsl provides a fluent builder for defining content and registering it.

Content kinds are declared explicitly with a Builder and registered in one
step, instead of relying on side effects of package initialisation.

Example usage:

	package main

	import (
		"github.com/aretw0/elementium/pkg/domain"
		"github.com/aretw0/elementium/pkg/dsl"
		"github.com/aretw0/elementium/pkg/formula"
	)

	func main() {
		b := dsl.New()

		spells := b.Group(domain.TypeSpell)
		spells.Element("light").Name("Light")
		spells.Element("fire_bolt").Name("Fire Bolt")

		wizard := b.Element(domain.TypeClass, "wizard").
			Name("Wizard").
			Choose(2, domain.AllOf(domain.TypeSpell))

		b.Variable("level", formula.Count(wizard.Ref())).Name("Level")

		reg, err := b.Build()
		// ... pass reg to character.New
	}
*/
package dsl
