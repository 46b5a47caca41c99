package pager

import "bytes"

// scanChunk bounds how many bytes a single Source.Slice call covers while
// looking for line boundaries.
const scanChunk = 64 << 10

// Source is the byte view the pager reads from. Len is at least 1; Slice
// returns the content in [start, end), which may be shorter than requested
// for the placeholder byte of an empty source.
type Source interface {
	Len() int
	Slice(start, end int) ([]byte, error)
}

// Range is the byte span of one line. End is the offset of the terminating
// newline, or the source length for a final line without one.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in the line, excluding the newline.
func (r Range) Len() int {
	return r.End - r.Start
}

// Index is an append-only table of line ranges discovered so far.
type Index struct {
	src    Source
	ranges []Range

	// start is the first byte of the line currently being scanned; pos is
	// the first byte not yet examined. They differ only while a line spans
	// more than one chunk.
	start int
	pos   int
}

// NewIndex returns an empty index over src.
func NewIndex(src Source) *Index {
	return &Index{src: src}
}

// Len returns the number of lines discovered so far.
func (ix *Index) Len() int {
	return len(ix.ranges)
}

// At returns the range of line i. It panics if i >= Len().
func (ix *Index) At(i int) Range {
	return ix.ranges[i]
}

// Complete reports whether the last known line reaches the end of the
// source. Once true, Ensure never scans again.
func (ix *Index) Complete() bool {
	n := len(ix.ranges)
	return n > 0 && ix.ranges[n-1].End >= ix.src.Len()-1
}

// Ensure extends the index until it holds at least n lines or the source is
// exhausted. Scanning resumes at the first unexamined byte.
func (ix *Index) Ensure(n int) error {
	size := ix.src.Len()

	for len(ix.ranges) < n && !ix.Complete() && ix.pos < size {
		end := min(ix.pos+scanChunk, size)
		chunk, err := ix.src.Slice(ix.pos, end)
		if err != nil {
			return err
		}

		base := ix.pos
		for {
			i := bytes.IndexByte(chunk, '\n')
			if i < 0 {
				break
			}
			nl := base + i
			ix.ranges = append(ix.ranges, Range{Start: ix.start, End: nl})
			ix.start = nl + 1
			base = nl + 1
			chunk = chunk[i+1:]

			if len(ix.ranges) >= n {
				ix.pos = ix.start
				return nil
			}
		}

		ix.pos = end
		if end == size && ix.start < size {
			ix.ranges = append(ix.ranges, Range{Start: ix.start, End: size})
			ix.start = size
		}
	}
	return nil
}

// Lines returns up to count ranges starting at line from. The result aliases
// the index and must not be modified.
func (ix *Index) Lines(from, count int) []Range {
	if from < 0 || from >= len(ix.ranges) || count <= 0 {
		return nil
	}
	end := min(from+count, len(ix.ranges))
	return ix.ranges[from:end:end]
}
