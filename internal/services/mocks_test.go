package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

type mockLoader struct {
	table *msgetl.Table
	err   error

	gotMessages   string
	gotCategories string
}

func (m *mockLoader) Load(_ context.Context, messagesPath, categoriesPath string) (*msgetl.Table, error) {
	m.gotMessages = messagesPath
	m.gotCategories = categoriesPath
	return m.table, m.err
}

type mockCleaner struct {
	table *msgetl.Table
	err   error

	got *msgetl.Table
}

func (m *mockCleaner) Clean(table *msgetl.Table) (*msgetl.Table, error) {
	m.got = table
	return m.table, m.err
}

type mockStore struct {
	writeErr error
	closeErr error

	written map[string]*msgetl.Table
	closed  bool
}

func (m *mockStore) WriteTable(_ context.Context, name string, table *msgetl.Table) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	if m.written == nil {
		m.written = make(map[string]*msgetl.Table)
	}
	m.written[name] = table
	return nil
}

func (m *mockStore) ReadTable(_ context.Context, name string) (*msgetl.Table, error) {
	t, ok := m.written[name]
	if !ok {
		return nil, fmt.Errorf("no table %q", name)
	}
	return t, nil
}

func (m *mockStore) Close() error {
	m.closed = true
	return m.closeErr
}

// recordingLogger keeps every formatted message in order.
type recordingLogger struct {
	mu      sync.Mutex
	info    []string
	verbose []string
	errors  []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
