package text

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Space-Cadet-Stuff/Custom-Text-as-Images/cache"
)

// Registry resolves font names to Face instances. It scans user font
// directories, falls back to system fonts, and finally to a bundled face
// so rendering never fails outright on a missing font.
//
// Parsed sources and sized faces are cached; cached entries are never
// mutated after insertion. Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	paths map[string]string // lowercase stem -> file path

	sources *cache.ShardedCache[string, *FontSource]
	faces   *cache.ShardedCache[string, *Face]

	fallbackOnce sync.Once
	fallback     *FontSource
}

// NewRegistry creates a Registry and scans the given directories for
// .ttf and .otf files. Directories that cannot be read are skipped; the
// registry still serves system and bundled fonts.
func NewRegistry(dirs ...string) *Registry {
	r := &Registry{
		paths:   make(map[string]string),
		sources: cache.NewSharded[string, *FontSource](8, cache.StringHasher),
		faces:   cache.NewSharded[string, *Face](32, cache.StringHasher),
	}
	for _, dir := range dirs {
		r.AddDir(dir)
	}
	return r
}

// AddDir scans dir for font files and registers them by file stem.
// Returns the number of fonts registered.
func (r *Registry) AddDir(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !isFontFile(name) {
			continue
		}
		stem := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		r.paths[stem] = filepath.Join(dir, name)
		added++
	}
	return added
}

// Names returns the registered font names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.paths))
	for stem := range r.paths {
		names = append(names, stem)
	}
	sort.Strings(names)
	return names
}

// Face resolves name at sizePt and returns the face.
//
// Resolution order: an explicit file path loads that file; a bare name is
// looked up in the registered directories, then among system fonts. A name
// that resolves nowhere falls back to the bundled face, with fallback
// reporting the substitution, so a missing font degrades the render
// instead of failing it.
func (r *Registry) Face(name string, sizePt float64) (face *Face, fallback bool, err error) {
	key := strings.ToLower(name)
	cacheKey := key + "\x00" + sizeKey(sizePt)
	if f, ok := r.faces.Get(cacheKey); ok {
		return f, false, nil
	}

	src, fallback, err := r.resolve(name)
	if err != nil {
		return nil, false, err
	}

	f, err := src.Face(sizePt)
	if err != nil {
		return nil, false, err
	}
	if !fallback {
		r.faces.Set(cacheKey, f)
	}
	return f, fallback, nil
}

// resolve maps a font name to a parsed source.
func (r *Registry) resolve(name string) (src *FontSource, fallback bool, err error) {
	if name == "" {
		src, err = r.fallbackSource()
		return src, false, err
	}

	// Explicit path: load it, or substitute the bundled face. A render
	// never fails because a font went missing.
	if isFontFile(name) || strings.ContainsRune(name, os.PathSeparator) {
		if src, err = r.loadPath(name); err == nil {
			return src, false, nil
		}
		src, err = r.fallbackSource()
		return src, true, err
	}

	// Registered directories.
	r.mu.RLock()
	path, ok := r.paths[strings.ToLower(name)]
	r.mu.RUnlock()
	if ok {
		if src, err = r.loadPath(path); err == nil {
			return src, false, nil
		}
	}

	// System fonts.
	if path, ferr := findfont.Find(name + ".ttf"); ferr == nil {
		if src, err = r.loadPath(path); err == nil {
			return src, false, nil
		}
	}

	src, err = r.fallbackSource()
	return src, true, err
}

// loadPath parses a font file, caching the source by path.
func (r *Registry) loadPath(path string) (*FontSource, error) {
	if src, ok := r.sources.Get(path); ok {
		return src, nil
	}
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	r.sources.Set(path, src)
	return src, nil
}

// fallbackSource parses the bundled Go Regular font once.
func (r *Registry) fallbackSource() (*FontSource, error) {
	var err error
	r.fallbackOnce.Do(func() {
		r.fallback, err = NewFontSource(goregular.TTF)
	})
	if r.fallback == nil {
		if err == nil {
			err = ErrEmptyFontData
		}
		return nil, err
	}
	return r.fallback, nil
}

func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

func sizeKey(sizePt float64) string {
	return strconv.FormatFloat(sizePt, 'f', 2, 64)
}
