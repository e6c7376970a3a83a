package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	GetDocumentAction(c *gin.Context)
	ReplaceDocumentAction(c *gin.Context)
	MergeDocumentAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	SetCellAction(c *gin.Context)
	SetHeaderAction(c *gin.Context)
	EditorPageAction(c *gin.Context)
}
