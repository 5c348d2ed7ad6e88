package service

import (
	"github.com/MKhiriev/go-case-sync/internal/adapter"
	"github.com/MKhiriev/go-case-sync/internal/casediff"
	"github.com/MKhiriev/go-case-sync/internal/config"
	"github.com/MKhiriev/go-case-sync/internal/store"
)

// ClientServices groups the services of the sync client.
type ClientServices struct {
	CaseSyncService CaseSyncService
	SyncJob         SyncJob
}

func NewClientServices(storages *store.ClientStorages, remote adapter.CaseAdapter, cfg config.ClientWorkers) *ClientServices {
	syncSvc := NewCaseSyncService(storages.ChangeQueue, remote, casediff.NewOperator(), cfg.SyncConcurrency)

	return &ClientServices{
		CaseSyncService: syncSvc,
		SyncJob:         NewSyncJob(syncSvc),
	}
}
