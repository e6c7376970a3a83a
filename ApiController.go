package main

import (
	"errors"
	"github.com/BeiChenYi/webbapi/contracts"
	"github.com/gin-gonic/gin"
	"net/http"
)

const (
	DocumentSavedMessage = "table data updated and saved"
	CellSavedMessage     = "cell updated and saved"
	HeaderSavedMessage   = "header updated and saved"
)

type ApiController struct {
	DocumentRepository contracts.DocumentRepository
}

type CellEndpointParams struct {
	Row int `uri:"row"`
	Col int `uri:"col"`
}

type HeaderEndpointParams struct {
	Col int `uri:"col"`
}

type ReplaceDocumentRequest struct {
	Rows    *int        `json:"rows"`
	Cols    *int        `json:"cols"`
	Headers []string    `json:"headers"`
	Data    *[][]string `json:"data"`
}

type MergeDocumentRequest struct {
	Headers *[]string   `json:"headers"`
	Rows    *int        `json:"rows"`
	Cols    *int        `json:"cols"`
	Data    *[][]string `json:"data"`
}

type SetCellRequest struct {
	Value *string `json:"value"`
}

type SetHeaderRequest struct {
	Header *string `json:"header"`
}

type EditorPage struct {
	Document *contracts.GridDocument
	ApiPath  string
}

func NewApiController(documentRepository contracts.DocumentRepository) *ApiController {
	return &ApiController{DocumentRepository: documentRepository}
}

func (api *ApiController) GetDocumentAction(c *gin.Context) {
	c.JSON(http.StatusOK, api.DocumentRepository.GetDocument())
}

func (api *ApiController) ReplaceDocumentAction(c *gin.Context) {
	request := ReplaceDocumentRequest{}

	err := c.ShouldBindJSON(&request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": contracts.InvalidFormatError.Error()})
		return
	}

	err = api.DocumentRepository.ReplaceDocument(contracts.ReplaceDocumentCommand{
		Rows:    request.Rows,
		Cols:    request.Cols,
		Headers: request.Headers,
		Data:    request.Data,
	})

	api.respond(c, err, DocumentSavedMessage)
}

func (api *ApiController) MergeDocumentAction(c *gin.Context) {
	request := MergeDocumentRequest{}

	err := c.ShouldBindJSON(&request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": contracts.InvalidFormatError.Error()})
		return
	}

	err = api.DocumentRepository.MergeDocument(contracts.MergeDocumentCommand{
		Headers: request.Headers,
		Rows:    request.Rows,
		Cols:    request.Cols,
		Data:    request.Data,
	})

	api.respond(c, err, DocumentSavedMessage)
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var value string

	err := c.ShouldBindUri(&params)
	if err != nil {
		// indices which are not numbers can not address any cell
		err = contracts.CellNotFoundError
	} else {
		value, err = api.DocumentRepository.GetCell(params.Row, params.Col)
	}

	if err != nil {
		api.writeError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"value": value})
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}

	if err := c.ShouldBindUri(&params); err != nil {
		api.writeError(c, contracts.CellNotFoundError)
		return
	}

	// a body without a usable value is reported after the bounds check
	_ = c.ShouldBindJSON(&request)

	err := api.DocumentRepository.SetCell(params.Row, params.Col, request.Value)
	api.respond(c, err, CellSavedMessage)
}

func (api *ApiController) SetHeaderAction(c *gin.Context) {
	params := HeaderEndpointParams{}
	request := SetHeaderRequest{}

	if err := c.ShouldBindUri(&params); err != nil {
		api.writeError(c, contracts.ColumnNotFoundError)
		return
	}

	_ = c.ShouldBindJSON(&request)

	err := api.DocumentRepository.SetHeader(params.Col, request.Header)
	api.respond(c, err, HeaderSavedMessage)
}

func (api *ApiController) EditorPageAction(c *gin.Context) {
	document := api.DocumentRepository.GetDocument()
	document.Normalize()

	c.HTML(http.StatusOK, editorTemplateName, EditorPage{
		Document: document,
		ApiPath:  "/api/data",
	})
}

func (api *ApiController) respond(c *gin.Context, err error, message string) {
	if err != nil {
		api.writeError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
	}
}

func (api *ApiController) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, contracts.CellNotFoundError), errors.Is(err, contracts.ColumnNotFoundError):
		status = http.StatusNotFound
	case errors.Is(err, contracts.InvalidFormatError), errors.Is(err, contracts.MissingFieldError):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
