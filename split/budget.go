package split

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const (
	// defaultOpenFilesCeiling caps the open-file budget when the caller
	// gives no override, even when the process limit is higher.
	defaultOpenFilesCeiling = 4096

	// reservedDescriptors accounts for stdin, stdout, stderr, and the one
	// active input file.
	reservedDescriptors = 4
)

// resolveOpenFilesLimit computes how many output files may be open at once:
// the lesser of the override (or the internal ceiling) and the process soft
// RLIMIT_NOFILE, minus the reserved descriptors. An override of zero means
// no override.
func resolveOpenFilesLimit(override int) (int, error) {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rl); err != nil {
		return 0, fmt.Errorf("reading the process file descriptor limit: %w", err)
	}
	soft := int(rl.Cur)
	if rl.Cur == unix.RLIM_INFINITY || rl.Cur > 1<<20 {
		soft = 1 << 20
	}
	return computeOpenFilesLimit(soft, override)
}

// computeOpenFilesLimit is the pure arithmetic behind resolveOpenFilesLimit,
// separated so it can be tested without manipulating rlimits.
func computeOpenFilesLimit(softLimit, override int) (int, error) {
	if softLimit <= reservedDescriptors {
		return 0, fmt.Errorf("%w: process limit is %d, %d are reserved",
			ErrOpenFilesTooSmall, softLimit, reservedDescriptors)
	}
	limit := defaultOpenFilesCeiling
	if override != 0 {
		if override <= reservedDescriptors {
			return 0, fmt.Errorf("%w: got %d, %d are reserved",
				ErrOpenFilesTooSmall, override, reservedDescriptors)
		}
		if override > softLimit {
			return 0, fmt.Errorf("%w: got %d, process limit is %d",
				ErrOpenFilesExceedsOS, override, softLimit)
		}
		limit = override
	}
	if limit > softLimit {
		limit = softLimit
	}
	return limit - reservedDescriptors, nil
}
