package monitor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/genricoloni/deskwall/internal/domain"
	"github.com/genricoloni/deskwall/internal/domain/mocks"
	"github.com/genricoloni/deskwall/internal/shell/shelltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// TestList covers enumeration against a mocked service:
// 1. Success keeps the service order
// 2. Any failing call discards the partial result
func TestList(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		setupMock func(*mocks.MockService)
		expected  []domain.Monitor
		expectErr bool
	}{
		{
			name: "Success - Two Monitors",
			setupMock: func(m *mocks.MockService) {
				gomock.InOrder(
					m.EXPECT().MonitorCount().Return(2, nil),
					m.EXPECT().MonitorID(0).Return(`\\?\DISPLAY#A`, nil),
					m.EXPECT().Wallpaper(`\\?\DISPLAY#A`).Return(`C:\wall\a.jpg`, nil),
					m.EXPECT().MonitorID(1).Return(`\\?\DISPLAY#B`, nil),
					m.EXPECT().Wallpaper(`\\?\DISPLAY#B`).Return("", nil),
				)
			},
			expected: []domain.Monitor{
				{ID: `\\?\DISPLAY#A`, Wallpaper: `C:\wall\a.jpg`},
				{ID: `\\?\DISPLAY#B`, Wallpaper: ""},
			},
		},
		{
			name: "Success - No Monitors",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().MonitorCount().Return(0, nil)
			},
			expected: []domain.Monitor{},
		},
		{
			name: "Error - Count Fails",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().MonitorCount().Return(0, errBoom)
			},
			expectErr: true,
		},
		{
			name: "Error - Identifier Fails Midway",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().MonitorCount().Return(2, nil)
				m.EXPECT().MonitorID(0).Return("a", nil)
				m.EXPECT().Wallpaper("a").Return("/a.png", nil)
				m.EXPECT().MonitorID(1).Return("", errBoom)
			},
			expectErr: true,
		},
		{
			name: "Error - Empty Identifier",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().MonitorCount().Return(1, nil)
				m.EXPECT().MonitorID(0).Return("", nil)
			},
			expectErr: true,
		},
		{
			name: "Error - Wallpaper Fails",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().MonitorCount().Return(1, nil)
				m.EXPECT().MonitorID(0).Return("a", nil)
				m.EXPECT().Wallpaper("a").Return("", errBoom)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockService(ctrl)
			tt.setupMock(svc)

			monitors, err := List(svc)

			if tt.expectErr {
				if !errors.Is(err, domain.ErrService) {
					t.Fatalf("expected ErrService, got %v", err)
				}
				if monitors != nil {
					t.Errorf("expected no monitors on failure, got %v", monitors)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assert.Equal(t, tt.expected, monitors)
		})
	}
}

func TestListWrapsServiceErrorOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().MonitorCount().Return(0, domain.ServiceError("get monitor count", errors.New("rpc")))

	_, err := List(svc)
	require.Error(t, err)
	assert.Equal(t, 1, countService(err))
}

func countService(err error) int {
	n := 0
	for _, e := range unwrapAll(err) {
		if e == domain.ErrService {
			n++
		}
	}
	return n
}

func unwrapAll(err error) []error {
	if err == nil {
		return nil
	}
	out := []error{err}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			out = append(out, unwrapAll(e)...)
		}
	case interface{ Unwrap() error }:
		out = append(out, unwrapAll(u.Unwrap())...)
	}
	return out
}

func TestDirectorySelect(t *testing.T) {
	svc := shelltest.New("first", "second", "third")
	svc.Assign("second", "/pictures/b.png")

	dir, err := NewDirectory(zap.NewNop(), svc)
	require.NoError(t, err)
	require.Equal(t, 3, dir.Len())

	tests := []struct {
		index    int
		expected string
		wantErr  bool
	}{
		{0, "first", false},
		{1, "second", false},
		{2, "third", false},
		{3, "", true},
		{-1, "", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index %d", tt.index), func(t *testing.T) {
			m, err := dir.Select(tt.index)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrMonitorOutOfRange)
				assert.Contains(t, err.Error(), "from 0 to 2")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.ID)
		})
	}

	m, _ := dir.Select(1)
	assert.Equal(t, "/pictures/b.png", m.Wallpaper)
}

func TestDirectoryWithoutMonitors(t *testing.T) {
	dir, err := NewDirectory(zap.NewNop(), shelltest.New())
	require.NoError(t, err)

	_, err = dir.Select(0)
	assert.ErrorIs(t, err, domain.ErrMonitorOutOfRange)
	assert.Contains(t, err.Error(), "no monitors are available")
}

func TestDirectoryIsASnapshot(t *testing.T) {
	svc := shelltest.New("only")
	svc.Assign("only", "/old.png")

	dir, err := NewDirectory(zap.NewNop(), svc)
	require.NoError(t, err)

	require.NoError(t, svc.SetWallpaper("only", "/new.png"))
	monitors := dir.Monitors()
	assert.Equal(t, "/old.png", monitors[0].Wallpaper)

	monitors[0].ID = "changed"
	m, _ := dir.Select(0)
	assert.Equal(t, "only", m.ID)
}

func TestDisplaysNeverEmpty(t *testing.T) {
	displays := Displays(zap.NewNop())
	require.NotEmpty(t, displays)
	assert.Equal(t, "display-0", displays[0])
}
