// Package printer provides the process-wide printer manager.
//
// There is exactly one Manager per process. It is created lazily, exactly
// once, on the first call to GetInstance; every call returns the same
// pointer. Manager has no exported constructor, so GetInstance is the only
// way to obtain one.
//
//	m := printer.GetInstance()
//	m.PrintDocument("Report.pdf") // Printing document: Report.pdf
package printer
