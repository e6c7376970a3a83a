package main

import (
	"github.com/BeiChenYi/webbapi/contracts"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
	"time"
)

type ServiceContainer struct {
	Database           *bbolt.DB
	Storage            contracts.DocumentStorage
	DocumentRepository contracts.DocumentRepository
	ApiController      contracts.ApiController
	Router             *gin.Engine
}

func BuildServiceContainer(cfg *Config) (container ServiceContainer, err error) {
	switch cfg.StorageDriver {
	case StorageDriverBolt:
		container.Database, err = bbolt.Open(cfg.DatabaseFilePath, 0600, &bbolt.Options{Timeout: time.Second})
		if err != nil {
			return
		}
		container.Storage = NewBoltStorage(container.Database)
	default:
		container.Storage = NewJsonFileStorage(cfg.DataFilePath)
	}

	container.DocumentRepository = NewDocumentRepository(container.Storage)
	container.ApiController = NewApiController(container.DocumentRepository)

	container.Router = SetupRouter(container.ApiController)

	return
}

func (container *ServiceContainer) Close() error {
	return container.Storage.Close()
}
