package filesystem

import "fmt"

// guardedWalkFn invokes a Walk callback and converts a panic inside it
// into an error, so a misbehaving callback cannot unwind through a
// whole traversal.
func guardedWalkFn(fn func(File, error) error, file File, walkErr error, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("walk callback panicked at %s: %v", path, r)
		}
	}()
	return fn(file, walkErr)
}
