// Command printmgr prints documents through the shared printer manager.
//
// Usage:
//
//	printmgr [flags] [document ...]
//
// With no documents it prints Report.pdf then Letter.docx:
//
//	Printing document: Report.pdf
//	Printing document: Letter.docx
//
// Flags:
//
//	--log-level   debug, info, warn, error (default warn; env PRINTMGR_LOG_LEVEL)
//	--log-format  console, json (default console; env PRINTMGR_LOG_FORMAT)
//
// Logs go to stderr; stdout only ever carries document lines.
package main
