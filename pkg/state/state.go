package state

import "time"

// State is the persisted cursor of a followed file.
// It is saved after each flush that emitted at least one metric.
type State struct {
	// Path is the absolute path of the followed file.
	Path string `json:"path"`

	// Offset is the byte position after the last emitted line.
	Offset int64 `json:"offset"`

	// Lines counts metrics emitted from Path since it was first followed.
	Lines uint64 `json:"lines"`

	// LastFlushAt is the time of the last successful flush.
	LastFlushAt time.Time `json:"last_flush_at"`
}

// IsEmpty returns true if the state has not been initialized.
func (s State) IsEmpty() bool {
	return s.Path == ""
}

// ResumeOffset returns the offset to continue reading path from, or false when
// the saved cursor belongs to another file or lies beyond size (the file was
// truncated or replaced).
func (s State) ResumeOffset(path string, size int64) (int64, bool) {
	if s.IsEmpty() || s.Path != path || s.Offset > size {
		return 0, false
	}
	return s.Offset, true
}

// Advance records a flush of lines metrics ending at offset.
// Switching to another path restarts the line count.
func (s *State) Advance(path string, offset int64, lines int) {
	if s.Path != path {
		s.Path = path
		s.Lines = 0
	}
	s.Offset = offset
	s.Lines += uint64(lines)
	s.LastFlushAt = time.Now()
}
