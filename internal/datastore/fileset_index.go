package datastore

import (
	"sort"
	"strings"

	"github.com/aleister1102/polisnap/internal/common/filemanager"
	"github.com/aleister1102/polisnap/internal/models"
)

// Artifact extensions of a dated file-set
const (
	ExtHTML       = "html"
	ExtScreenshot = "png"
	ExtContent    = "json"
	ExtPDF        = "pdf"
	ExtPlainText  = "txt"
	ExtMetadata   = "meta"
)

// FileSetIndex records which artifact extensions exist for each date stamp in
// a policy directory. It is built once per acquisition.
type FileSetIndex struct {
	sets map[string]map[string]struct{}
}

// NewFileSetIndex indexes file names of the form <stamp>.<ext>. Names whose
// stamp part is not an 8-digit date stamp are ignored.
func NewFileSetIndex(names []string) *FileSetIndex {
	idx := &FileSetIndex{sets: make(map[string]map[string]struct{})}
	for _, name := range names {
		stamp, ext, found := strings.Cut(name, ".")
		if !found {
			continue
		}
		if _, ok := models.ParseDateStamp(stamp); !ok {
			continue
		}
		if idx.sets[stamp] == nil {
			idx.sets[stamp] = make(map[string]struct{})
		}
		idx.sets[stamp][ext] = struct{}{}
	}
	return idx
}

// BuildFileSetIndex lists dir and indexes its dated files. A missing
// directory yields an empty index.
func BuildFileSetIndex(fileManager *filemanager.FileManager, dir string) (*FileSetIndex, error) {
	names, err := fileManager.ListDir(dir)
	if err != nil {
		return nil, err
	}
	return NewFileSetIndex(names), nil
}

// HasStamp reports whether any file exists for stamp
func (idx *FileSetIndex) HasStamp(stamp string) bool {
	_, ok := idx.sets[stamp]
	return ok
}

// Has reports whether the file <stamp>.<ext> exists
func (idx *FileSetIndex) Has(stamp, ext string) bool {
	_, ok := idx.sets[stamp][ext]
	return ok
}

// LatestWithExt returns the numerically greatest stamp that has a file with ext
func (idx *FileSetIndex) LatestWithExt(ext string) (string, bool) {
	latest, latestValue := "", -1
	for stamp, exts := range idx.sets {
		if _, ok := exts[ext]; !ok {
			continue
		}
		value, _ := models.ParseDateStamp(stamp)
		if value > latestValue {
			latest, latestValue = stamp, value
		}
	}
	return latest, latestValue >= 0
}

// Stamps returns every indexed stamp in ascending order
func (idx *FileSetIndex) Stamps() []string {
	stamps := make([]string, 0, len(idx.sets))
	for stamp := range idx.sets {
		stamps = append(stamps, stamp)
	}
	sort.Slice(stamps, func(i, j int) bool {
		a, _ := models.ParseDateStamp(stamps[i])
		b, _ := models.ParseDateStamp(stamps[j])
		return a < b
	})
	return stamps
}

// Len returns the number of dated file-sets
func (idx *FileSetIndex) Len() int {
	return len(idx.sets)
}
