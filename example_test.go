package elementium_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/elementium"
	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/dsl"
	"github.com/aretw0/elementium/pkg/formula"
)

// ExampleNew demonstrates how to define content in Go and evaluate a character.
func ExampleNew() {
	// 1. Define content with the builder.
	b := dsl.New()
	wizard := b.Element(domain.TypeClass, "wizard").Name("Wizard")
	fighter := b.Element(domain.TypeClass, "fighter").Name("Fighter")
	b.Variable("level", formula.Add(formula.Count(wizard.Ref()), formula.Count(fighter.Ref()))).Name("Level")

	reg, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Build a character from element references.
	rules := elementium.New(elementium.WithRegistry(reg))
	c, err := rules.NewCharacter(wizard.Ref(), wizard.Ref(), fighter.Ref())
	if err != nil {
		log.Fatal(err)
	}

	level, err := c.GetVariable("level")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("level:", level)

	// Output:
	// level: 3
}

// ExampleLoad demonstrates loading YAML content.
func ExampleLoad() {
	rules, err := elementium.Load([]string{"testdata/srd.yaml"})
	if err != nil {
		log.Fatal(err)
	}

	wizard := domain.ID(domain.TypeClass, "wizard")
	fighter := domain.ID(domain.TypeClass, "fighter")
	c, err := rules.NewCharacter(wizard, fighter, fighter)
	if err != nil {
		log.Fatal(err)
	}

	hp, err := c.GetVariable("hit_points")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("hit points:", hp)

	// Output:
	// hit points: 26
}

// Example_circularDependency shows how a self-referencing variable is reported.
func Example_circularDependency() {
	b := dsl.New()
	b.Variable("a", formula.Var[int]("b")).Name("Alpha")
	b.Variable("b", formula.Var[int]("a")).Name("Beta")

	reg, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	c, err := elementium.New(elementium.WithRegistry(reg)).NewCharacter()
	if err != nil {
		log.Fatal(err)
	}

	_, err = c.GetVariable("a")
	fmt.Println(errors.Is(err, domain.ErrCircularDependency))
	fmt.Println(err)

	// Output:
	// true
	// variable Alpha trapped in circular dependency (a -> b -> a)
}
