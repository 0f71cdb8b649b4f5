package generate

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// sniffLen is how much of a file start is needed for type detection.
const sniffLen = 262

// isArchiveFile reports whether path looks like a zip archive we can walk:
// proper extension and a header the zip reader accepts. A .zip extension
// over garbage content is reported as "not an archive", not as an error.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	if !filetype.Is(head[:n], "zip") {
		return false, nil
	}

	// reader must actually accept it - magic alone passes truncated archives
	r, err := zip.OpenReader(path)
	if err != nil {
		return false, nil
	}
	r.Close()
	return true, nil
}

// isMarkupName reports whether the file name carries one of the configured
// markup extensions. Used when walking directories and archives, where
// anything else is silently skipped.
func isMarkupName(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// looksBinary reports whether data starts like a known binary format
// (image, archive, executable and so on). An explicitly named source file is
// accepted regardless of extension, this is the only guard against feeding
// the extractor a PNG.
func looksBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	kind, err := filetype.Match(data)
	return err == nil && kind != filetype.Unknown
}
