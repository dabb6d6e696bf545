package main

import (
	"tabularDataEditor/contracts"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Config             Config
	Logger             *logrus.Logger
	Database           *bbolt.DB
	DocumentRepository contracts.DocumentRepository
	WebsocketHub       *WebsocketHub
	ChangeDispatcher   contracts.ChangeDispatcher
	RowFinder          contracts.RowFinder
	DocumentManager    contracts.DocumentManager
	ApiController      contracts.ApiController
	Router             *gin.Engine
}

func BuildServiceContainer(config Config) (container ServiceContainer, err error) {
	container.Config = config

	container.Logger = logrus.New()
	container.Logger.SetLevel(config.LogLevel)
	container.Logger.SetFormatter(&logrus.JSONFormatter{})
	logger := logrus.NewEntry(container.Logger)

	container.Database, err = bbolt.Open(config.DatabaseFilepath, 0600, nil)
	if err != nil {
		return
	}

	container.DocumentRepository = NewDocumentRepository(container.Database, NewDocumentBinarySerializer())
	container.WebsocketHub = NewWebsocketHub(logger)
	container.ChangeDispatcher = NewChangeDispatcher(container.WebsocketHub, config.WebhookWorkers, logger)
	container.RowFinder = NewRowFinder(NewCanonicalizer())

	container.DocumentManager = NewDocumentManager(
		container.DocumentRepository, container.ChangeDispatcher,
		container.RowFinder, NewXlsxExporter(),
		config.QuiescenceWindow, logger,
	)
	container.ApiController = NewApiController(container.DocumentManager, container.ChangeDispatcher, container.WebsocketHub, logger)

	container.Router = SetupRouter(container.ApiController)

	return
}
