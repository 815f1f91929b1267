// Package errors provides structured, actionable errors for the hxglue
// CLI, config loader and HTTP surface.
//
// # Error Categories
//
//   - config: hxglue.json and environment overrides
//   - server: listener failures
//   - exchange: upstream requests and swap targets
//   - cli: command usage
//
// # Usage
//
//	err := errors.New(errors.CodeConfigSyntax).
//	    WithOffset("hxglue.json", data, syntaxErr.Offset).
//	    Wrap(syntaxErr)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Invalid config file
//	//
//	//   hxglue.json:3:14
//	//
//	//       2 │   "server": {
//	//   →   3 │     "port": "80"
//	//       4 │   },
//	//
//	//   hxglue.json is not valid JSON or has a field of the wrong type.
package errors
