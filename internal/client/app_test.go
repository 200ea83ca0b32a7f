package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/mock"
	"github.com/MKhiriev/go-notes-book/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	err    error
	called bool
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.called = true
	return f.err
}

func newServices(t *testing.T, adapter *mock.MockServerAdapter) *service.ClientServices {
	t.Helper()
	return service.NewClientServices(adapter, logger.Nop())
}

func TestNewApp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := newServices(t, mock.NewMockServerAdapter(ctrl))

	_, err := NewApp(services, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoUI)

	_, err = NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)

	app, err := NewApp(services, &fakeUI{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name       string
		versionErr error
		uiErr      error
		wantErr    bool
	}{
		{name: "server reachable", versionErr: nil},
		{name: "server unreachable still starts ui", versionErr: errors.New("dial tcp: connection refused")},
		{name: "ui error is returned", uiErr: errors.New("tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			adapter := mock.NewMockServerAdapter(ctrl)
			adapter.EXPECT().GetServerVersion(gomock.Any()).Return("1.0.0", tt.versionErr)

			ui := &fakeUI{err: tt.uiErr}
			app, err := NewApp(newServices(t, adapter), ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			assert.True(t, ui.called)
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
