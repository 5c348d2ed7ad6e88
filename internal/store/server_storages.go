package store

import (
	"github.com/MKhiriev/go-case-sync/internal/logger"
)

// ServerStorages groups the repositories of the development remote
// authority.
type ServerStorages struct {
	Cases CaseAuthority
}

// NewServerStorages returns storages backed by process memory. Nothing
// survives a restart.
func NewServerStorages(logger *logger.Logger) *ServerStorages {
	logger.Info().Msg("creating in-memory server storages...")

	return &ServerStorages{
		Cases: NewMemoryCaseAuthority(logger),
	}
}
