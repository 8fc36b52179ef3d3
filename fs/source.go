package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/templatemaker"
)

// Ensure DirSource implements templatemaker.SampleSource at compile time.
var _ templatemaker.SampleSource = (*DirSource)(nil)

// DirSource reads samples from the regular files of a directory.
type DirSource struct {
	// Recursive descends into subdirectories.
	Recursive bool
	// Glob, if set, keeps only files whose base name matches the pattern.
	Glob string
}

// Samples returns every matching file under root, ordered by path.
// Returns ENOTFOUND if root does not exist.
func (s *DirSource) Samples(ctx context.Context, root string) ([]*templatemaker.Sample, error) {
	if s.Glob != "" {
		if _, err := filepath.Match(s.Glob, ""); err != nil {
			return nil, templatemaker.Errorf(templatemaker.EINVALID, "invalid glob %q", s.Glob)
		}
	}

	info, err := os.Stat(root)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, templatemaker.Errorf(templatemaker.ENOTFOUND, "sample directory %q not found", root)
	} else if err != nil {
		return nil, err
	} else if !info.IsDir() {
		return nil, templatemaker.Errorf(templatemaker.EINVALID, "%q is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && !s.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if s.Glob != "" {
			if ok, _ := filepath.Match(s.Glob, d.Name()); !ok {
				return nil
			}
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	samples := make([]*templatemaker.Sample, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		samples = append(samples, &templatemaker.Sample{Path: path, Content: string(data)})
	}
	return samples, nil
}

// ReadSamples reads the named files as samples, keeping their order.
func ReadSamples(paths ...string) ([]*templatemaker.Sample, error) {
	samples := make([]*templatemaker.Sample, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, templatemaker.Errorf(templatemaker.ENOTFOUND, "sample file %q not found", path)
		} else if err != nil {
			return nil, err
		}
		samples = append(samples, &templatemaker.Sample{Path: path, Content: string(data)})
	}
	return samples, nil
}
