// Package convert turns LogViewer filter files into pack documents.
//
// A LogViewer file holds one filter per line:
//
//	name,base64(pattern),flags,R:G:B[,verbosity]
//
// Malformed lines are skipped and reported; the conversion only fails when
// the input is missing or no line survives.
package convert
