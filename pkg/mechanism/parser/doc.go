// Package parser reads a mechanism configuration of any schema line.
//
// The schema is chosen from the document itself: directories and files
// listing "camp-files" are legacy v0 configurations, other files are routed
// by the major of their "version" field.
//
//	p := parser.New().WithLogger(logger)
//	res := p.Parse("mechanism.yaml")
//	if !res.OK() {
//		for _, d := range res.Errors.Diagnostics() {
//			fmt.Fprintln(os.Stderr, d)
//		}
//	}
package parser
