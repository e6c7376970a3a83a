package main

import (
	"embed"
	"github.com/BeiChenYi/webbapi/contracts"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

const editorTemplateName = "editor.html"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(), Cors())
	router.SetHTMLTemplate(template.Must(template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templatesFS, "templates/*.html")))

	router.GET("/", controller.EditorPageAction)

	apiRouterGroup := router.Group("/api")
	apiRouterGroup.GET("/data", controller.GetDocumentAction)
	apiRouterGroup.POST("/data", controller.ReplaceDocumentAction)
	apiRouterGroup.PUT("/data", controller.MergeDocumentAction)

	apiRouterGroup.GET("/cell/:row/:col", controller.GetCellAction)
	apiRouterGroup.PUT("/cell/:row/:col", controller.SetCellAction)
	apiRouterGroup.PUT("/header/:col", controller.SetHeaderAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
