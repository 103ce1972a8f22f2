package services

import (
	"context"

	"github.com/mojiscan/mojiscan/pkg/mojiscan"
)

type mockFileScanner struct {
	findings []mojiscan.Finding
	summary  *mojiscan.ScanSummary
	scanErr  error

	gotConfig *mojiscan.ScanConfig
	calls     int
}

func (m *mockFileScanner) ScanDirectory(_ context.Context, cfg mojiscan.ScanConfig, report func(mojiscan.Finding) error) (*mojiscan.ScanSummary, error) {
	m.calls++
	m.gotConfig = &cfg
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	for _, f := range m.findings {
		if err := report(f); err != nil {
			return nil, err
		}
	}
	if m.summary != nil {
		return m.summary, nil
	}
	return &mojiscan.ScanSummary{FilesFlagged: len(m.findings)}, nil
}

type mockLogger struct{}

func (m *mockLogger) Verbose(_ string, _ ...interface{}) {}
func (m *mockLogger) Info(_ string, _ ...interface{})    {}
func (m *mockLogger) Error(_ string, _ ...interface{})   {}

type failWriter struct {
	err error
}

func (w *failWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}
