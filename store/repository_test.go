// SPDX-License-Identifier: MIT
package store_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/katalvlaran/numlab/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RepositorySuite runs the Repository contract against each backend.
type RepositorySuite struct {
	suite.Suite
	open func(recs ...store.Record) (store.Repository, error)
	repo store.Repository
	ctx  context.Context
}

func (s *RepositorySuite) SetupTest() {
	var err error
	s.ctx = context.Background()
	s.repo, err = s.open(store.Record{No: 1, Equation: "x"}, store.Record{No: 2, Equation: "y"})
	s.Require().NoError(err)
}

func (s *RepositorySuite) TestGet() {
	rec, err := s.repo.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("x", rec.Equation)

	_, err = s.repo.Get(s.ctx, 9)
	s.Require().ErrorIs(err, store.ErrNotFound)
}

func (s *RepositorySuite) TestPutReplacesOnly() {
	s.Require().NoError(s.repo.Put(s.ctx, 2, store.Record{No: 77, Equation: "z", XL: "1"}))
	rec, err := s.repo.Get(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(store.Record{No: 2, Equation: "z", XL: "1"}, rec)

	s.Require().ErrorIs(s.repo.Put(s.ctx, 5, store.Record{}), store.ErrNotFound)
	_, err = s.repo.Get(s.ctx, 5)
	s.Require().ErrorIs(err, store.ErrNotFound)
}

func (s *RepositorySuite) TestInsert() {
	s.Require().NoError(s.repo.Insert(s.ctx, store.Record{No: 3}))
	s.Require().ErrorIs(s.repo.Insert(s.ctx, store.Record{No: 3}), store.ErrExists)
	s.Require().ErrorIs(s.repo.Insert(s.ctx, store.Record{No: 0}), store.ErrInvalidKey)

	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]int{1, 2, 3}, []int{all[0].No, all[1].No, all[2].No})
}

func (s *RepositorySuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.repo.Get(ctx, 1)
	s.Require().ErrorIs(err, context.Canceled)
	s.Require().ErrorIs(s.repo.Put(ctx, 1, store.Record{}), context.Canceled)
}

func (s *RepositorySuite) TestConcurrentPut() {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			no := 1 + i%2
			s.NoError(s.repo.Put(s.ctx, no, store.Record{Equation: "x"}))
			_, err := s.repo.Get(s.ctx, no)
			s.NoError(err)
		}(i)
	}
	wg.Wait()
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositorySuite{open: func(recs ...store.Record) (store.Repository, error) {
		return store.NewMemory(recs...)
	}})
}

func TestFileRepository(t *testing.T) {
	suite.Run(t, &RepositorySuite{open: func(recs ...store.Record) (store.Repository, error) {
		return store.OpenFile(filepath.Join(t.TempDir(), "records.json"), recs...)
	}})
}

func TestNewMemoryRejectsDuplicates(t *testing.T) {
	_, err := store.NewMemory(store.Record{No: 1}, store.Record{No: 1})
	require.ErrorIs(t, err, store.ErrExists)
}

func TestFileSnapshotReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "records.json")

	f, err := store.OpenFile(path, store.Seed()...)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path())
	require.NoError(t, f.Put(ctx, 4, store.Record{Equation: "x^2 - 3", X: "1"}))

	again, err := store.OpenFile(path, store.Record{No: 99})
	require.NoError(t, err)
	rec, err := again.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "x^2 - 3", rec.Equation)

	_, err = again.Get(ctx, 99)
	require.ErrorIs(t, err, store.ErrNotFound, "seed is ignored when a snapshot exists")

	all, err := again.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(store.Seed()))
}

func TestFileCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := store.OpenFile(path)
	require.Error(t, err)
}

func TestFileFailedSaveLeavesMemoryUnchanged(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.Mkdir(dir, 0o700))

	f, err := store.OpenFile(filepath.Join(dir, "records.json"), store.Record{No: 1, Equation: "x"})
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(dir))

	require.Error(t, f.Put(ctx, 1, store.Record{Equation: "y"}))
	rec, err := f.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "x", rec.Equation, "a failed write must not be visible")

	require.Error(t, f.Insert(ctx, store.Record{No: 2}))
	_, err = f.Get(ctx, 2)
	require.ErrorIs(t, err, store.ErrNotFound)
}
