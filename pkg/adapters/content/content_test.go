package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/elementium/pkg/adapters/content"
	"github.com/aretw0/elementium/pkg/character"
	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/registry"
)

func load(t *testing.T, src string) (*registry.Registry, error) {
	t.Helper()
	doc, err := content.Parse([]byte(src))
	if err != nil {
		return nil, err
	}
	reg := registry.New()
	return reg, doc.Register(reg)
}

func TestLoadFile(t *testing.T) {
	reg := registry.New()
	require.NoError(t, content.LoadFile(reg, "testdata/basic.yaml"))
	assert.Equal(t, 10, reg.Len())

	wizard, err := reg.Get(domain.TypeClass, "wizard")
	require.NoError(t, err)
	assert.Equal(t, "Arcane caster", wizard.Summary())
	assert.Equal(t, []domain.Ref{domain.ID(domain.TypeFeature, "spellcasting")}, wizard.Granted)

	choices, err := reg.ResolveChoices(wizard, 0)
	require.NoError(t, err)
	var keys []string
	for _, d := range choices {
		keys = append(keys, d.Key().String())
	}
	assert.Equal(t, []string{"spell:fire_bolt", "spell:fireball", "spell:light", "feat:alert"}, keys)

	fighter, err := reg.Get(domain.TypeClass, "fighter")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDescription, fighter.Summary())
}

func TestLoadFile_CharacterValues(t *testing.T) {
	reg := registry.New()
	require.NoError(t, content.LoadFile(reg, "testdata/basic.yaml"))

	wizard := domain.ID(domain.TypeClass, "wizard")
	fighter := domain.ID(domain.TypeClass, "fighter")

	cases := []struct {
		name string
		refs []domain.Ref
		want map[string]any
	}{
		{
			name: "Empty",
			want: map[string]any{"level": 0, "proficiency": 1, "spell_slots": 0},
		},
		{
			name: "Fighter Only",
			refs: []domain.Ref{fighter},
			want: map[string]any{"level": 1, "proficiency": 2, "spell_slots": 0},
		},
		{
			name: "Multiclass",
			refs: []domain.Ref{wizard, wizard, wizard, fighter, fighter},
			want: map[string]any{"level": 5, "proficiency": 3, "spell_slots": 6},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := character.New(reg, tc.refs)
			require.NoError(t, err)
			values, err := c.AllVariableValues()
			require.NoError(t, err)
			assert.Equal(t, tc.want, values)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	err := content.LoadFile(registry.New(), "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestParse_IntegerType(t *testing.T) {
	reg, err := load(t, `
elements:
  - type: 120
    id: background
    name: Background
`)
	require.NoError(t, err)
	_, err = reg.Get(domain.Type(120), "background")
	assert.NoError(t, err)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := content.Parse([]byte(`
elements:
  - type: spell
    id: light
    name: Light
    colour: white
`))
	assert.Error(t, err)

	_, err = content.Parse([]byte("elements: [\n"))
	assert.Error(t, err)
}

func TestRegister_MalformedEntries(t *testing.T) {
	cases := map[string]string{
		"Unknown Type": `
elements:
  - {type: psionic, id: mind_blast, name: Mind Blast}
`,
		"Variable Under Elements": `
elements:
  - {type: variable, id: level, name: Level}
`,
		"Grant Without Id": `
elements:
  - {type: class, id: wizard, name: Wizard, granted: ["feature"]}
`,
		"Bad Match Pattern": `
elements:
  - type: class
    id: wizard
    name: Wizard
    options:
      - count: 1
        choices: [{type: spell, match: "[fire"}]
`,
		"Missing Name": `
elements:
  - {type: spell, id: light}
`,
		"Missing Formula": `
variables:
  - {id: level, name: Level}
`,
		"Unknown Operator": `
variables:
  - {id: level, name: Level, formula: {pow: [2, 3]}}
`,
		"Two Operators": `
variables:
  - {id: level, name: Level, formula: {add: [1, 2], sub: [3, 4]}}
`,
		"Single Operand": `
variables:
  - {id: level, name: Level, formula: {add: [1]}}
`,
		"Boolean Where Integer Expected": `
variables:
  - {id: level, name: Level, formula: true}
`,
		"Comparison Arity": `
variables:
  - id: level
    name: Level
    formula: {if: {gt: [1, 2, 3]}, then: 1, else: 0}
`,
		"Stray If Key": `
variables:
  - id: level
    name: Level
    formula: {if: true, then: 1, else: 0, otherwise: 2}
`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := load(t, src)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidRegistration)
		})
	}
}

func TestRegister_ReportsEveryEntry(t *testing.T) {
	doc, err := content.Parse([]byte(`
elements:
  - {type: psionic, id: mind_blast, name: Mind Blast}
  - {type: spell, id: light, name: Light}
variables:
  - {id: level, name: Level, formula: {pow: [2, 3]}}
`))
	require.NoError(t, err)

	_, err = doc.Descriptors()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elements[0]")
	assert.Contains(t, err.Error(), "variables[0]")
	assert.NotContains(t, err.Error(), "elements[1]")
}

func TestRegister_Duplicate(t *testing.T) {
	_, err := load(t, `
elements:
  - {type: spell, id: light, name: Light}
  - {type: spell, id: light, name: Light Again}
`)
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestFormula_Operators(t *testing.T) {
	reg, err := load(t, `
elements:
  - {type: feat, id: alert, name: Alert}
variables:
  - {id: base, name: Base, formula: {const: 7}}
  - {id: neg, name: Neg, formula: {neg: {var: base}}}
  - {id: floor, name: Floor, formula: {floordiv: [{var: neg}, 2]}}
  - {id: mod, name: Mod, formula: {mod: [{var: neg}, 3]}}
  - {id: low, name: Low, formula: {min: [{var: base}, 3, 5]}}
  - id: logic
    name: Logic
    formula:
      if:
        and:
          - {not: {has: "feat:alert"}}
          - {or: [{const: true}, {eq: [1, 2]}]}
      then: 1
      else: {if: {le: [{var: low}, 3]}, then: 2, else: 3}
`)
	require.NoError(t, err)

	c, err := character.New(reg, nil)
	require.NoError(t, err)
	values, err := c.AllVariableValues()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"base":  7,
		"neg":   -7,
		"floor": -4,
		"mod":   2,
		"low":   3,
		"logic": 1,
	}, values)

	c, err = character.New(reg, []domain.Ref{domain.ID(domain.TypeFeat, "alert")})
	require.NoError(t, err)
	logic, err := c.GetVariable("logic")
	require.NoError(t, err)
	assert.Equal(t, 2, logic)
}
