// Package symbols keeps a process-wide table of type declarations found in
// source files.
//
// A Loader reads each file at most once, hands its contents to an Extractor
// and registers every declaration under its fully-qualified name. Lookups
// select names by namespace prefix:
//
//	loader := symbols.Default()
//	if err := loader.Load("src/Util/Path.php"); err != nil {
//	    return err
//	}
//	names := loader.Match(`Ahc\Phint\`)
//
// Loading has a global effect: declarations stay registered for the lifetime
// of the loader, and loading the same path again is a no-op.
package symbols
