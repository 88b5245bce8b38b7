// Package pkg provides shared utilities for drill.
package pkg

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Spool buffers items of type T on disk so a grading run does not have to
// hold every result in memory. Items are appended sequentially and read back
// by index or by full iteration.
type Spool[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(fn func(index uint64, item T) error) error
	Close() error
}

type diskSpool[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// NewSpool creates a Spool backed by a temp file in the OS temp directory.
func NewSpool[T any]() (Spool[T], error) {
	file, err := os.CreateTemp("", "drill-spool-*.gob")
	if err != nil {
		slog.Error("failed to create spool file", "error", err)
		return nil, fmt.Errorf("failed to create spool file: %w", err)
	}

	slog.Debug("created spool", "path", file.Name())

	return &diskSpool[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Len returns the number of items appended so far.
func (s *diskSpool[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

// Path returns the backing file path.
func (s *diskSpool[T]) Path() string {
	return s.path
}

// Append encodes one item onto the spool.
func (s *diskSpool[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.encoder.Encode(item); err != nil {
		slog.Error("failed to encode spool item", "path", s.path, "index", s.length, "error", err)
		return fmt.Errorf("failed to encode spool item: %w", err)
	}

	s.length++

	return nil
}

// AppendBatch encodes a slice of items onto the spool.
func (s *diskSpool[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := s.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Get decodes the item at index. The backing file is re-read from the start,
// so Get stays valid after Close.
func (s *diskSpool[T]) Get(index uint64) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	if index >= s.length {
		return zero, fmt.Errorf("spool index %d out of bounds (length %d)", index, s.length)
	}

	item := zero

	err := s.decodeUpTo(index+1, func(_ uint64, decoded T) error {
		item = decoded
		return nil
	})
	if err != nil {
		return zero, err
	}

	return item, nil
}

// Range calls fn for every item in append order. Iteration stops at the
// first error fn returns.
func (s *diskSpool[T]) Range(fn func(index uint64, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.decodeUpTo(s.length, fn)
}

// decodeUpTo replays the first n encoded items through fn. Callers hold mu.
func (s *diskSpool[T]) decodeUpTo(n uint64, fn func(index uint64, item T) error) error {
	file, err := os.Open(s.path)
	if err != nil {
		slog.Error("failed to open spool file", "path", s.path, "error", err)
		return fmt.Errorf("failed to open spool file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close spool file", "path", s.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	var item T

	for i := uint64(0); i < n; i++ {
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode spool item", "path", s.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode spool item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close flushes and closes the backing file. Data stays readable afterwards.
func (s *diskSpool[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	if err := s.file.Close(); err != nil {
		slog.Error("failed to close spool", "path", s.path, "error", err)
		return err
	}

	s.file = nil
	slog.Debug("closed spool", "path", s.path, "length", s.length)

	return nil
}
