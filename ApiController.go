package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"tabularDataEditor/contracts"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const DefaultWindowRows = 1000

const DefaultWindowColumns = 256

var RequestError = errors.New("invalid request")

const XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApiController struct {
	DocumentManager   contracts.DocumentManager
	ChangeDispatcher  contracts.ChangeDispatcher
	ChangeBroadcaster contracts.ChangeBroadcaster
	Logger            *logrus.Entry
}

type DocumentEndpointParams struct {
	DocumentId string `uri:"doc_id" binding:"required"`
}

type OpenDocumentBody struct {
	Id string `json:"id" binding:"required"`
	contracts.OpenDocumentRequest
}

type CloseDocumentQuery struct {
	Save bool `form:"save"`
}

type CellsWindowQuery struct {
	Top     int `form:"top"`
	Left    int `form:"left"`
	Rows    int `form:"rows"`
	Columns int `form:"columns"`
}

type FindQuery struct {
	Query string `form:"q" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url"`
}

type CommandResponse struct {
	Changed  bool                   `json:"changed"`
	Event    *contracts.ChangeEvent `json:"event,omitempty"`
	Document contracts.DocumentInfo `json:"document"`
}

func NewApiController(
	documentManager contracts.DocumentManager, changeDispatcher contracts.ChangeDispatcher,
	changeBroadcaster contracts.ChangeBroadcaster, logger *logrus.Entry,
) *ApiController {
	return &ApiController{
		DocumentManager:   documentManager,
		ChangeDispatcher:  changeDispatcher,
		ChangeBroadcaster: changeBroadcaster,
		Logger:            logger.WithField("component", "api"),
	}
}

func (api *ApiController) OpenDocumentAction(c *gin.Context) {
	request := OpenDocumentBody{}
	var response contracts.DocumentInfo

	err := bindError(c.ShouldBindJSON(&request))
	if err == nil {
		response, err = api.DocumentManager.Open(request.Id, request.OpenDocumentRequest)
	}

	api.respond(c, http.StatusCreated, response, err)
}

func (api *ApiController) LoadDocumentAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	var response contracts.DocumentInfo

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		response, err = api.DocumentManager.Load(params.DocumentId)
	}

	api.respond(c, http.StatusCreated, response, err)
}

func (api *ApiController) CloseDocumentAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	query := CloseDocumentQuery{}

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		err = bindError(c.ShouldBindQuery(&query))
	}
	if err == nil {
		err = api.DocumentManager.Close(params.DocumentId, query.Save)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) GetDocumentAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	var response contracts.DocumentInfo

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		response, err = api.DocumentManager.Info(params.DocumentId)
	}

	api.respond(c, http.StatusOK, response, err)
}

func (api *ApiController) GetCellsAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	query := CellsWindowQuery{}
	var response [][]string

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		err = bindError(c.ShouldBindQuery(&query))
	}
	if err == nil {
		if query.Rows <= 0 {
			query.Rows = DefaultWindowRows
		}
		if query.Columns <= 0 {
			query.Columns = DefaultWindowColumns
		}
		response, err = api.DocumentManager.Window(
			params.DocumentId,
			contracts.NewCellRange(query.Top, query.Left, query.Rows, query.Columns),
		)
	}

	api.respond(c, http.StatusOK, gin.H{"cells": response}, err)
}

func (api *ApiController) GetTypesAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	var response []contracts.CellType

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		response, err = api.DocumentManager.Types(params.DocumentId)
	}

	api.respond(c, http.StatusOK, gin.H{"types": response}, err)
}

func (api *ApiController) GetEditsAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	var response []contracts.EditedCell

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		response, err = api.DocumentManager.Edits(params.DocumentId)
	}

	api.respond(c, http.StatusOK, gin.H{"edits": response}, err)
}

func (api *ApiController) FindAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	query := FindQuery{}
	var response *contracts.FindResult

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		err = bindError(c.ShouldBindQuery(&query))
	}
	if err == nil {
		response, err = api.DocumentManager.Find(params.DocumentId, query.Query)
	}

	api.respond(c, http.StatusOK, response, err)
}

func (api *ApiController) ExportXlsxAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	var buffer bytes.Buffer

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		err = api.DocumentManager.ExportXlsx(params.DocumentId, &buffer)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+params.DocumentId+`.xlsx"`)
	c.Data(http.StatusOK, XlsxContentType, buffer.Bytes())
}

func (api *ApiController) GetTextAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	var text string

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		text, err = api.DocumentManager.Text(params.DocumentId)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.String(http.StatusOK, text)
	}
}

func (api *ApiController) CommandAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	command := contracts.DocumentCommand{}

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		err = bindError(c.ShouldBindJSON(&command))
	}
	if err != nil {
		api.respondError(c, err)
		return
	}

	api.execute(c, params.DocumentId, command)
}

func (api *ApiController) UndoAction(c *gin.Context) {
	api.historyAction(c, contracts.CommandUndo)
}

func (api *ApiController) RedoAction(c *gin.Context) {
	api.historyAction(c, contracts.CommandRedo)
}

func (api *ApiController) SaveAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	var response contracts.DocumentInfo

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		err = api.DocumentManager.Save(params.DocumentId)
	}
	if err == nil {
		response, err = api.DocumentManager.Info(params.DocumentId)
	}

	api.respond(c, http.StatusOK, response, err)
}

func (api *ApiController) SelectAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	selection := contracts.Selection{}
	var response contracts.DocumentInfo

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		err = bindError(c.ShouldBindJSON(&selection))
	}
	if err == nil {
		response, err = api.DocumentManager.Select(params.DocumentId, selection)
	}

	api.respond(c, http.StatusOK, response, err)
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := DocumentEndpointParams{}
	request := SubscribeRequest{}

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		err = bindError(c.ShouldBindJSON(&request))
	}
	if err == nil {
		_, err = api.DocumentManager.Info(params.DocumentId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	api.ChangeDispatcher.SetWebhookUrl(params.DocumentId, request.WebhookUrl)
	c.JSON(http.StatusCreated, gin.H{"webhook_url": api.ChangeDispatcher.GetWebhookUrl(params.DocumentId)})
}

func (api *ApiController) WebsocketAction(c *gin.Context) {
	params := DocumentEndpointParams{}

	err := bindError(c.ShouldBindUri(&params))
	if err == nil {
		_, err = api.DocumentManager.Info(params.DocumentId)
	}
	if err != nil {
		api.respondError(c, err)
		return
	}

	// the upgrader has already answered the request on failure
	if err = api.ChangeBroadcaster.ServeWs(params.DocumentId, c.Writer, c.Request); err != nil {
		api.Logger.WithError(err).WithField("document", params.DocumentId).Warn("websocket upgrade failed")
	}
}

func (api *ApiController) historyAction(c *gin.Context, command contracts.CommandTag) {
	params := DocumentEndpointParams{}
	if err := bindError(c.ShouldBindUri(&params)); err != nil {
		api.respondError(c, err)
		return
	}

	api.execute(c, params.DocumentId, contracts.DocumentCommand{Command: command})
}

func (api *ApiController) execute(c *gin.Context, documentId string, command contracts.DocumentCommand) {
	response := CommandResponse{}

	event, err := api.DocumentManager.Execute(documentId, command)
	if err == nil {
		response.Changed = event != nil
		response.Event = event
		response.Document, err = api.DocumentManager.Info(documentId)
	}

	api.respond(c, http.StatusOK, response, err)
}

func (api *ApiController) respond(c *gin.Context, status int, response any, err error) {
	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(status, response)
	}
}

func (api *ApiController) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, contracts.DocumentNotFoundError):
		status = http.StatusNotFound
	case errors.Is(err, contracts.DocumentAlreadyOpenError):
		status = http.StatusConflict
	case errors.Is(err, contracts.UnknownCommandError),
		errors.Is(err, contracts.ExpressionError),
		errors.Is(err, UnterminatedQuoteError):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, RequestError):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		api.Logger.WithError(err).Error("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func bindError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", RequestError, err.Error())
}
