package header

// ByteRange represents one byte-range-spec from a Range header: a bounded
// range, a right-unbounded range ("everything from first on") or a suffix
// range ("the last N bytes"). Unset positions are -1.
type ByteRange struct {
	FirstBytePosition int64
	LastBytePosition  int64
	SuffixLength      int64
}

func newByteRange() ByteRange {
	return ByteRange{FirstBytePosition: -1, LastBytePosition: -1, SuffixLength: -1}
}

// Bounded returns a byte range covering positions first through last,
// inclusive.
func Bounded(first, last int64) ByteRange {
	r := newByteRange()
	r.FirstBytePosition = first
	r.LastBytePosition = last
	return r
}

// RightUnbounded returns a byte range from position first to the end of the
// entity.
func RightUnbounded(first int64) ByteRange {
	r := newByteRange()
	r.FirstBytePosition = first
	return r
}

// Suffix returns a byte range covering the final length bytes of the entity.
func Suffix(length int64) ByteRange {
	r := newByteRange()
	r.SuffixLength = length
	return r
}

// HasFirstBytePosition reports whether the range carries an absolute start.
func (r ByteRange) HasFirstBytePosition() bool { return r.FirstBytePosition >= 0 }

// HasLastBytePosition reports whether the range carries an absolute end.
func (r ByteRange) HasLastBytePosition() bool { return r.LastBytePosition >= 0 }

// IsSuffixByteRange reports whether the range is expressed as a suffix
// length.
func (r ByteRange) IsSuffixByteRange() bool { return r.SuffixLength > 0 }

// IsValid reports whether exactly one of the three shapes holds: a positive
// suffix length, a bounded range with last not before first, or a
// right-unbounded range.
func (r ByteRange) IsValid() bool {
	if r.SuffixLength > 0 {
		return true
	}
	return r.FirstBytePosition >= 0 &&
		(r.LastBytePosition == -1 || r.LastBytePosition >= r.FirstBytePosition)
}
