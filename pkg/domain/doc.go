/*
Package domain contains the core vocabulary of the Elementium evaluation core.

It defines the static side of character content: element categories (Type),
descriptors, element references and the choice specifications that options
are made of. It also defines the narrow contracts that formulas evaluate
against (Querier, Evaluator) and the error kinds reported by the registry
and the character runtime. This package is kept pure and free of I/O.

# Key Entities

  - Descriptor: the static definition of one content kind (a race, a spell, a variable).
  - Ref: a reference to a descriptor, either a literal or a (type, id) pair.
  - Choice / Option: a selectable slot and the candidates that fill it.
  - Querier: the query surface a Character exposes to formulas.
*/
package domain
