// Package signature loads gene-set signature tables and decodes their rows
// into typed records.
//
// A table is read whole into memory from a comma-separated file whose first
// record names the columns. Gzip-compressed files are detected by their magic
// bytes and decompressed on the fly. A Schema binds the named columns a
// conversion needs (NAME, DESCRIPTION, GENE_SYMBOLS and a grouping key) to
// their positions, failing with a MissingColumnsError that lists every
// absent column at once.
package signature
