package domain

import (
	"path"
	"slices"

	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// Generic system configuration directories hold files for many unrelated
// services, so a package owning one of them must not pull in all of them.
var reservedDirs = map[m.Path]struct{}{
	"/etc":        {},
	"/etc/init":   {},
	"/etc/init.d": {},
}

// IsReservedDir reports whether dir is excluded from bulk directory matching.
func IsReservedDir(dir m.Path) bool {
	_, ok := reservedDirs[dir]
	return ok
}

// DirectoryIndex maps a directory to the tracked files directly inside it.
type DirectoryIndex struct {
	dirs map[m.Path][]m.Path
}

// BuildDirectoryIndex groups files by their containing directory, skipping
// the reserved directories. Each bucket is sorted.
func BuildDirectoryIndex(files []m.Path) DirectoryIndex {
	dirs := map[m.Path][]m.Path{}

	for _, file := range files {
		dir := m.Path(path.Dir(string(file)))
		if IsReservedDir(dir) {
			continue
		}

		dirs[dir] = append(dirs[dir], file)
	}

	for dir := range dirs {
		slices.Sort(dirs[dir])
	}

	return DirectoryIndex{dirs: dirs}
}

// Lookup returns the files directly inside dir.
func (d DirectoryIndex) Lookup(dir m.Path) ([]m.Path, bool) {
	files, ok := d.dirs[dir]
	return files, ok
}

// Len returns the number of indexed directories.
func (d DirectoryIndex) Len() int {
	return len(d.dirs)
}
