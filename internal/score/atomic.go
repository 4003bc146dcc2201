//go:build !windows

package score

import "github.com/google/renameio/v2"

func writeAtomic(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0o644)
}
