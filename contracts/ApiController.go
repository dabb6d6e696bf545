package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	OpenDocumentAction(c *gin.Context)
	LoadDocumentAction(c *gin.Context)
	CloseDocumentAction(c *gin.Context)
	GetDocumentAction(c *gin.Context)
	GetCellsAction(c *gin.Context)
	GetTypesAction(c *gin.Context)
	GetEditsAction(c *gin.Context)
	FindAction(c *gin.Context)
	ExportXlsxAction(c *gin.Context)
	GetTextAction(c *gin.Context)
	CommandAction(c *gin.Context)
	UndoAction(c *gin.Context)
	RedoAction(c *gin.Context)
	SaveAction(c *gin.Context)
	SelectAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
	WebsocketAction(c *gin.Context)
}
