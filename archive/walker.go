// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"
)

// WalkFunc is the type of the function called for each file in an archive
// visited by Walk. The archive argument is the path passed to Walk, the file
// argument is the zip.File for an entry under the requested root. If an
// error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk calls walkFn for every regular file in the archive located under
// root ("" means the whole archive). root is matched on path segments, so
// "sub" selects "sub/a.html" but not "subdir/a.html". Entries with absolute
// paths or path traversal components ("..") abort the walk to prevent Zip
// Slip attacks.
func Walk(archive, root string, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	root = strings.Trim(path.Clean("/"+root), "/")

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !underRoot(name, root) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// underRoot reports whether name is root itself or lies inside it.
func underRoot(name, root string) bool {
	if root == "" {
		return true
	}
	return name == root || strings.HasPrefix(name, root+"/")
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
