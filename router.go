package main

import (
	"net/http"
	"tabularDataEditor/contracts"

	"github.com/gin-gonic/gin"
)

const ApiVersion = "v1"

const documentPath = "/documents/:doc_id"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/documents", controller.OpenDocumentAction)
	apiRouterGroup.POST(documentPath+"/load", controller.LoadDocumentAction)
	apiRouterGroup.DELETE(documentPath, controller.CloseDocumentAction)
	apiRouterGroup.GET(documentPath, controller.GetDocumentAction)

	apiRouterGroup.GET(documentPath+"/cells", controller.GetCellsAction)
	apiRouterGroup.GET(documentPath+"/types", controller.GetTypesAction)
	apiRouterGroup.GET(documentPath+"/edits", controller.GetEditsAction)
	apiRouterGroup.GET(documentPath+"/find", controller.FindAction)
	apiRouterGroup.GET(documentPath+"/export.xlsx", controller.ExportXlsxAction)
	apiRouterGroup.GET(documentPath+"/text", controller.GetTextAction)

	apiRouterGroup.POST(documentPath+"/commands", controller.CommandAction)
	apiRouterGroup.POST(documentPath+"/undo", controller.UndoAction)
	apiRouterGroup.POST(documentPath+"/redo", controller.RedoAction)
	apiRouterGroup.POST(documentPath+"/save", controller.SaveAction)
	apiRouterGroup.PUT(documentPath+"/selection", controller.SelectAction)

	apiRouterGroup.POST(documentPath+"/subscribe", controller.SubscribeAction)
	apiRouterGroup.GET(documentPath+"/ws", controller.WebsocketAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
