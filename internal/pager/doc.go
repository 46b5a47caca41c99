// Package pager implements the paging engine: a lazily built line index over
// a byte source and a reader that answers windowed queries against it.
//
// The index discovers line boundaries on demand. A request for rows
// [offset, offset+rows) scans only as far as needed to satisfy it, and later
// requests resume where the previous scan stopped, so the total scanning work
// over a session is linear in the size of the source.
//
// Windows are clipped in bytes, not display cells: a column offset and width
// select a byte range of every line, which is then decoded permissively
// (invalid UTF-8 becomes U+FFFD) with tabs shown as single spaces.
package pager
