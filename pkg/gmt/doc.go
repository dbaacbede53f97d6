// Package gmt turns decoded signatures into GMT records and writes them.
//
// A GMT record here has three comma-separated fields: name, description and
// the gene list, itself comma-joined. Files carry no header and no index.
package gmt
