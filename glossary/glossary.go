// Package glossary copies reference glossary files into the output tree.
// Glossaries are opaque blobs: copied byte-for-byte, never parsed.
package glossary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyAll copies every regular file from srcDir into dstDir, creating
// dstDir if needed and overwriting existing files unconditionally.
// Subdirectories are skipped. Returns the number of files copied.
// A missing or unreadable srcDir is an error, as is any per-file failure.
func CopyAll(srcDir, dstDir string) (int, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return 0, fmt.Errorf("reading glossary directory %s: %w", srcDir, err)
	}
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dstDir, err)
	}

	copied := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src := filepath.Join(srcDir, entry.Name())
		dst := filepath.Join(dstDir, entry.Name())
		if err := copyFile(src, dst); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}
