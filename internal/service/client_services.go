package service

import (
	"github.com/MKhiriev/species-sync/internal/adapter"
	"github.com/MKhiriev/species-sync/internal/store"
)

type ClientServices struct {
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) *ClientServices {
	syncSvc := NewClientSyncService(localStore.Replica, serverAdapter)

	return &ClientServices{
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc),
	}
}
