// Package v0 reads the legacy CAMP configuration layout: a config file
// listing "camp-files", each of which holds a "camp-data" list of species,
// tolerance and mechanism objects.
//
// Unlike the v1 and development assemblers this parser stops at the first
// problem. The returned result then carries exactly one error, and the
// problem is also written to the parser's logger.
//
//	p := v0.New(slog.Default())
//	res := p.Parse("configs/chapman")
//	if !res.OK() {
//		fmt.Println(res.Errors.Errors[0].Diagnostic())
//	}
//
// Every species is placed in a single gas phase named "gas", which is the
// phase all gas-phase reactions refer to.
package v0
