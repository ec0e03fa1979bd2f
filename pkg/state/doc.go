// Package state persists the read position of a followed metrics file so that
// a restarted tailer resumes where the last successful flush ended.
//
// # Usage
//
//	repo := state.NewFileRepository("/var/lib/statship")
//
//	s, err := repo.Load(ctx)
//	if err != nil {
//	    return err
//	}
//
//	// ... emit and flush ...
//
//	s.Advance(path, offset, lines)
//	if err := repo.Save(ctx, s); err != nil {
//	    return err
//	}
//
// State JSON uses snake_case field names.
package state
