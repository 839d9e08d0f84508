package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/elementium/pkg/character"
	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/formula"
	"github.com/aretw0/elementium/pkg/registry"
)

func TestBuilder_SimpleContent(t *testing.T) {
	// 1. Define content using the DSL
	b := New()

	spells := b.Group(domain.TypeSpell)
	spells.Element("light").Name("Light")
	spells.Element("fire_bolt").Name("Fire Bolt").Describe("A mote of fire")

	b.Element(domain.TypeFeature, "spellcasting").Name("Spellcasting")

	wizard := b.Element(domain.TypeClass, "wizard").
		Name("Wizard").
		Grant(domain.ID(domain.TypeFeature, "spellcasting")).
		Choose(1, domain.AllOf(domain.TypeSpell))

	b.Variable("level", formula.Count(wizard.Ref())).Name("Level")

	// 2. Register into a fresh registry
	reg, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, reg.Len())

	// 3. Verify specific descriptors
	bolt, err := reg.Get(domain.TypeSpell, "fire_bolt")
	require.NoError(t, err)
	assert.Equal(t, "Fire Bolt", bolt.Name)
	assert.Equal(t, "A mote of fire", bolt.Summary())

	light, err := reg.Get(domain.TypeSpell, "light")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDescription, light.Summary())

	w, err := reg.Get(domain.TypeClass, "wizard")
	require.NoError(t, err)
	require.Len(t, w.Granted, 1)
	require.Len(t, w.Options, 1)

	choices, err := reg.ResolveChoices(w, 0)
	require.NoError(t, err)
	assert.Len(t, choices, 2)

	// 4. Evaluate against a character
	c, err := character.New(reg, []domain.Ref{wizard.Ref(), wizard.Ref()})
	require.NoError(t, err)
	level, err := c.GetVariable("level")
	require.NoError(t, err)
	assert.Equal(t, 2, level)
}

func TestBuilder_CollectsAllErrors(t *testing.T) {
	b := New()
	b.Element(domain.TypeSpell, "light").Name("Light")
	b.Element(domain.TypeSpell, "light").Name("Light Again")
	b.Element(domain.TypeSpell, "nameless")
	b.Element(domain.TypeSpell, "shield").Name("Shield")

	reg := registry.New()
	err := b.Register(reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
	assert.ErrorIs(t, err, domain.ErrInvalidRegistration)

	// Valid definitions are still registered.
	_, err = reg.Get(domain.TypeSpell, "shield")
	assert.NoError(t, err)

	_, err = b.Build()
	assert.Error(t, err)
}

func TestBuilder_VariableNeedsFormula(t *testing.T) {
	b := New()
	b.Element(domain.TypeVariable, "level").Name("Level")

	_, err := b.Build()
	assert.ErrorIs(t, err, domain.ErrInvalidRegistration)
}

func TestElementBuilder_BuildSnapshots(t *testing.T) {
	b := New()
	eb := b.Element(domain.TypeRace, "elf").Name("Elf").Grant(domain.ID(domain.TypeTrait, "darkvision"))

	first := eb.Build()
	eb.Describe("Pointy ears").Grant(domain.ID(domain.TypeTrait, "trance"))
	second := eb.Build()

	assert.NotSame(t, first, second)
	assert.Equal(t, domain.DefaultDescription, first.Summary())
	assert.Len(t, first.Granted, 1)
	assert.Equal(t, "Pointy ears", second.Description)
	assert.Len(t, second.Granted, 2)
	assert.Equal(t, domain.Key{Type: domain.TypeRace, ID: "elf"}, eb.Ref().Key())
}

func TestElementBuilder_RegisteredContentIsImmutable(t *testing.T) {
	b := New()
	eb := b.Element(domain.TypeSpell, "light").Name("Light").
		Choose(1, domain.ByID(domain.TypeSpell, "shield"))
	b.Element(domain.TypeSpell, "shield").Name("Shield")

	reg, err := b.Build()
	require.NoError(t, err)

	// Editing the builder afterwards must not reach the registry.
	eb.Name("").Choose(2, domain.AllOf(domain.TypeFeat))
	_ = b.Descriptors()

	light, err := reg.Get(domain.TypeSpell, "light")
	require.NoError(t, err)
	assert.Equal(t, "Light", light.Name)
	assert.Len(t, light.Options, 1)
	assert.NoError(t, light.Validate())

	// Registering again is a duplicate, not an overwrite.
	err = b.Register(reg)
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}
