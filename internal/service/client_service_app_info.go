package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-book/internal/adapter"
)

type clientAppInfoService struct {
	serverAdapter adapter.ServerAdapter
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter) ClientAppInfoService {
	return &clientAppInfoService{serverAdapter: serverAdapter}
}

func (s *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.serverAdapter.GetServerVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("server version: %w", mapAdapterError(err))
	}
	return version, nil
}
