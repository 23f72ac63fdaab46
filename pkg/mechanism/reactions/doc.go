// Package reactions holds the closed table of reaction kinds shared by the
// v1 and development schema lines.
//
// Each kind pairs a validator with a parser. Validation of one reaction
// runs the key-shape check first and stops there on failure; the component,
// species and phase checks that follow are independent and all report.
// Parsing assumes validation passed and fills in the documented defaults.
//
// The two schema lines differ only in a few key names and list shapes,
// captured by Dialect:
//
//	table := reactions.NewTable(reactions.Development)
//	errs := table.ValidateAll(root.Get("reactions"), species, phases)
//	if !errs.HasErrors() {
//		rs := table.ParseAll(root.Get("reactions"))
//		_ = rs
//	}
package reactions
