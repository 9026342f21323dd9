// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a Memory mirrored to a JSON snapshot on disk. Every Put or Insert
// rewrites the snapshot through a temporary file and rename; when that write
// fails the in-memory change is undone, so Get never returns unsaved data.
type File struct {
	*Memory
	path string
	wmu  sync.Mutex // serializes mutations together with their snapshot write
}

var _ Repository = (*File)(nil)

// OpenFile loads the snapshot at path. A missing file starts an empty
// repository seeded with recs; recs are ignored when the file exists.
func OpenFile(path string, recs ...Record) (*File, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		mem, err := NewMemory(recs...)
		if err != nil {
			return nil, storeErrorf("OpenFile", err)
		}
		f := &File{Memory: mem, path: path}
		if len(recs) > 0 {
			if err = f.save(); err != nil {
				return nil, storeErrorf("OpenFile", err)
			}
		}

		return f, nil
	case err != nil:
		return nil, storeErrorf("OpenFile", err)
	}

	var loaded []Record
	if err = json.Unmarshal(data, &loaded); err != nil {
		return nil, storeErrorf("OpenFile", fmt.Errorf("%s: %w", path, err))
	}
	mem, err := NewMemory(loaded...)
	if err != nil {
		return nil, storeErrorf("OpenFile", err)
	}

	return &File{Memory: mem, path: path}, nil
}

// Path returns the snapshot location.
func (f *File) Path() string { return f.path }

// Put implements Repository.
func (f *File) Put(ctx context.Context, no int, rec Record) error {
	f.wmu.Lock()
	defer f.wmu.Unlock()

	prev, err := f.Memory.Get(ctx, no)
	if err != nil {
		return err
	}
	if err = f.Memory.Put(ctx, no, rec); err != nil {
		return err
	}
	if err = f.save(); err != nil {
		f.Memory.set(prev)
		return err
	}

	return nil
}

// Insert implements Repository.
func (f *File) Insert(ctx context.Context, rec Record) error {
	f.wmu.Lock()
	defer f.wmu.Unlock()

	if err := f.Memory.Insert(ctx, rec); err != nil {
		return err
	}
	if err := f.save(); err != nil {
		f.Memory.remove(rec.No)
		return err
	}

	return nil
}

// save writes the snapshot; callers hold wmu.
func (f *File) save() error {
	recs, err := f.Memory.List(context.Background())
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return storeErrorf("save", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".numlab-*.json")
	if err != nil {
		return storeErrorf("save", err)
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return storeErrorf("save", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return storeErrorf("save", err)
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return storeErrorf("save", err)
	}

	return nil
}
