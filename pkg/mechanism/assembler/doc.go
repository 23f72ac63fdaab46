// Package assembler runs the staged validation and parsing of a
// single-document mechanism configuration.
//
// Stages run in a fixed order: version, envelope, species, phases,
// reactions and models. A failed version or envelope check ends the run, as
// does any species failure. Phase failures either end the run or hide the
// failing phase from later stages, depending on Config.StrictPhases.
// Reaction and model errors accumulate across siblings.
//
// The v1 and development packages configure an Assembler for their schema
// line; callers normally use those packages or the universal parser.
package assembler
