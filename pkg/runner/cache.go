package runner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"open-atmos/mechanism-configuration/pkg/mechanism/parser"
	v0 "open-atmos/mechanism-configuration/pkg/mechanism/v0"
)

// ResultCache holds parse results keyed by a fingerprint of the
// configuration on disk, so an unchanged file is not parsed twice.
// Cached results are shared and must not be modified.
type ResultCache struct {
	cache *gocache.Cache
}

// NewResultCache creates a cache whose entries expire after ttl.
func NewResultCache(ttl, cleanupInterval time.Duration) *ResultCache {
	return &ResultCache{cache: gocache.New(ttl, cleanupInterval)}
}

// Get returns the cached result for key.
func (c *ResultCache) Get(key string) (parser.Result, bool) {
	value, found := c.cache.Get(key)
	if !found {
		return parser.Result{}, false
	}
	res, ok := value.(parser.Result)
	if !ok {
		return parser.Result{}, false
	}
	return res, true
}

// Set stores res under key with the default expiration.
func (c *ResultCache) Set(key string, res parser.Result) {
	c.cache.SetDefault(key, res)
}

// Len returns the number of entries, including expired ones not yet
// cleaned up.
func (c *ResultCache) Len() int {
	return c.cache.ItemCount()
}

// Flush removes every entry.
func (c *ResultCache) Flush() {
	c.cache.Flush()
}

// Fingerprint identifies the current content of a file or directory by
// absolute path, size and modification time. For a directory the sizes of
// all files are summed and the latest modification time is used. When path
// is a v0 configuration the camp files it lists are folded in as well, since
// they may live outside the config's directory.
func Fingerprint(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}

	var key string
	if info.IsDir() {
		key, err = dirFingerprint(abs, info)
		if err != nil {
			return "", err
		}
	} else {
		key = fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano())
	}

	listed := v0.ListedFiles(abs)
	if len(listed) == 0 {
		return key, nil
	}
	var b strings.Builder
	b.WriteString(key)
	for _, file := range listed {
		fi, err := os.Stat(file)
		if err != nil {
			// The parser reports it; a later fix must still change the key.
			fmt.Fprintf(&b, "|%s|missing", file)
			continue
		}
		fmt.Fprintf(&b, "|%s|%d|%d", file, fi.Size(), fi.ModTime().UnixNano())
	}
	return b.String(), nil
}

func dirFingerprint(abs string, info fs.FileInfo) (string, error) {
	var (
		size   int64
		files  int
		latest = info.ModTime()
	)
	err := filepath.WalkDir(abs, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		if fi.ModTime().After(latest) {
			latest = fi.ModTime()
		}
		if !d.IsDir() {
			size += fi.Size()
			files++
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s|dir|%d|%d|%d", abs, files, size, latest.UnixNano()), nil
}
