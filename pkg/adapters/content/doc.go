// Package content loads element and variable descriptors from YAML files.
//
// A content file has two top-level lists, elements and variables. Variable
// formulas are written as a tree of single-key operator maps:
//
//	variables:
//	  - id: level
//	    name: Level
//	    formula: {add: [{count: "class:wizard"}, {count: "class:fighter"}]}
//
// Unknown keys are rejected. Every malformed entry is reported, not only the first.
package content
