package main

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/BeiChenYi/webbapi/contracts"
	"github.com/BeiChenYi/webbapi/mocks"
	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func _request(controller contracts.ApiController, method string, path string, body string) *httptest.ResponseRecorder {
	router := SetupRouter(controller)

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func _parseJsonBody(w *httptest.ResponseRecorder) (response map[string]any, err error) {
	err = json.Unmarshal(w.Body.Bytes(), &response)
	return
}

func _newFileController(t *testing.T) (*ApiController, *DocumentRepository) {
	repository, _ := _newFileRepository(t)
	return NewApiController(repository), repository
}

func TestApiController_GetDocumentAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	controller, _ := _newFileController(t)

	w := _request(controller, http.MethodGet, "/api/data", "")
	assert.Equal(t, http.StatusOK, w.Code)

	document := &contracts.GridDocument{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), document))
	assert.Equal(t, contracts.DefaultGridDocument(), document)
}

func TestApiController_ReplaceDocumentAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		controller, repository := _newFileController(t)

		w := _request(controller, http.MethodPost, "/api/data", `{"rows":1,"cols":2,"data":[["x","y"]]}`)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, response["success"])
		assert.Equal(t, DocumentSavedMessage, response["message"])

		document := repository.GetDocument()
		assert.Equal(t, 1, document.Rows)
		assert.Equal(t, [][]string{{"x", "y"}}, document.Data)
		assert.Equal(t, []string{"A", "B", "C", "D"}, document.Headers)
	})

	invalidBodies := map[string]string{
		"missing rows":   `{"cols":2,"data":[]}`,
		"missing cols":   `{"rows":2,"data":[]}`,
		"missing data":   `{"rows":2,"cols":2}`,
		"data is string": `{"rows":2,"cols":2,"data":"abc"}`,
		"data is object": `{"rows":2,"cols":2,"data":{"0":["a"]}}`,
		"null data":      `{"rows":2,"cols":2,"data":null}`,
		"not json":       `rows=2`,
	}

	for name, body := range invalidBodies {
		t.Run(name, func(t *testing.T) {
			controller, repository := _newFileController(t)

			w := _request(controller, http.MethodPost, "/api/data", body)
			response, err := _parseJsonBody(w)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, contracts.InvalidFormatError.Error(), response["error"])
			assert.Equal(t, contracts.DefaultGridDocument(), repository.GetDocument())
		})
	}

	t.Run("persistence error", func(t *testing.T) {
		repository := mocks.NewDocumentRepository(t)
		repository.On("ReplaceDocument", mock.Anything).
			Return(fmt.Errorf("%w: %w", contracts.PersistenceError, errors.New("disk full")))

		w := _request(NewApiController(repository), http.MethodPost, "/api/data", `{"rows":0,"cols":0,"data":[]}`)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, response["error"], contracts.PersistenceError.Error())
	})
}

func TestApiController_MergeDocumentAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("headers only", func(t *testing.T) {
		controller, repository := _newFileController(t)

		w := _request(controller, http.MethodPut, "/api/data", `{"headers":["Q","W","E","R"]}`)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, response["success"])

		expected := contracts.DefaultGridDocument()
		expected.Headers = []string{"Q", "W", "E", "R"}
		assert.Equal(t, expected, repository.GetDocument())
	})

	t.Run("command fields", func(t *testing.T) {
		repository := mocks.NewDocumentRepository(t)
		repository.On("MergeDocument", mock.MatchedBy(func(command contracts.MergeDocumentCommand) bool {
			return command.Headers == nil && command.Data == nil &&
				command.Rows != nil && *command.Rows == 7 &&
				command.Cols != nil && *command.Cols == 0
		})).Return(nil)

		w := _request(NewApiController(repository), http.MethodPut, "/api/data", `{"rows":7,"cols":0}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mistyped fields are rejected", func(t *testing.T) {
		for _, body := range []string{`{"rows":"many"}`, `{"rows":"5"}`, `{"data":[[1]]}`, `{"headers":"A"}`} {
			controller, repository := _newFileController(t)

			w := _request(controller, http.MethodPut, "/api/data", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.Equal(t, contracts.DefaultGridDocument(), repository.GetDocument())
		}
	})
}

func TestApiController_GetCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should return cell value", func(t *testing.T) {
		controller, _ := _newFileController(t)

		w := _request(controller, http.MethodGet, "/api/cell/1/2", "")
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "C2", response["value"])
	})

	for _, path := range []string{"/api/cell/5/0", "/api/cell/0/4", "/api/cell/-1/0", "/api/cell/abc/0", "/api/cell/10/10"} {
		t.Run("not found "+path, func(t *testing.T) {
			controller, _ := _newFileController(t)

			w := _request(controller, http.MethodGet, path, "")
			response, err := _parseJsonBody(w)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, response["error"], contracts.CellNotFoundError.Error())
		})
	}

	t.Run("custom error", func(t *testing.T) {
		repository := mocks.NewDocumentRepository(t)
		repository.On("GetCell", 0, 0).Return("", errors.New("test"))

		w := _request(NewApiController(repository), http.MethodGet, "/api/cell/0/0", "")
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "test", response["error"])
	})
}

func TestApiController_SetCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success write", func(t *testing.T) {
		controller, repository := _newFileController(t)

		w := _request(controller, http.MethodPut, "/api/cell/0/0", `{"value":"X"}`)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, CellSavedMessage, response["message"])

		value, err := repository.GetCell(0, 0)
		assert.NoError(t, err)
		assert.Equal(t, "X", value)
	})

	t.Run("out of bounds", func(t *testing.T) {
		controller, repository := _newFileController(t)

		w := _request(controller, http.MethodPut, "/api/cell/10/10", `{"value":"X"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, contracts.DefaultGridDocument(), repository.GetDocument())
	})

	t.Run("out of bounds wins over missing value", func(t *testing.T) {
		controller, _ := _newFileController(t)

		w := _request(controller, http.MethodPut, "/api/cell/10/10", `{}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing value", func(t *testing.T) {
		controller, repository := _newFileController(t)

		for _, body := range []string{`{}`, `{"value":null}`, ``} {
			w := _request(controller, http.MethodPut, "/api/cell/0/0", body)
			response, err := _parseJsonBody(w)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
			assert.Contains(t, response["error"], contracts.MissingFieldError.Error())
		}
		assert.Equal(t, contracts.DefaultGridDocument(), repository.GetDocument())
	})

	t.Run("persistence error", func(t *testing.T) {
		repository := mocks.NewDocumentRepository(t)
		repository.On("SetCell", 1, 1, mock.Anything).Return(contracts.PersistenceError)

		w := _request(NewApiController(repository), http.MethodPut, "/api/cell/1/1", `{"value":"v"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestApiController_SetHeaderAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		controller, repository := _newFileController(t)

		w := _request(controller, http.MethodPut, "/api/header/1", `{"header":"Name"}`)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, HeaderSavedMessage, response["message"])
		assert.Equal(t, "Name", repository.GetDocument().Headers[1])
	})

	t.Run("not found", func(t *testing.T) {
		controller, repository := _newFileController(t)

		for _, path := range []string{"/api/header/4", "/api/header/-1", "/api/header/x"} {
			w := _request(controller, http.MethodPut, path, `{"header":"Name"}`)
			response, err := _parseJsonBody(w)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, w.Code, path)
			assert.Contains(t, response["error"], contracts.ColumnNotFoundError.Error())
		}
		assert.Equal(t, contracts.DefaultGridDocument(), repository.GetDocument())
	})

	t.Run("missing header", func(t *testing.T) {
		controller, _ := _newFileController(t)

		w := _request(controller, http.MethodPut, "/api/header/0", `{"value":"Name"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApiController_EditorPageAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repository := mocks.NewDocumentRepository(t)
	repository.On("GetDocument").Return(&contracts.GridDocument{
		Rows:    2,
		Cols:    2,
		Headers: []string{"Name"},
		Data:    [][]string{{"<b>x</b>"}},
	})

	w := _request(NewApiController(repository), http.MethodGet, "/", "")
	body := w.Body.String()

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, `<th data-col="0">Name</th>`)
	assert.Contains(t, body, `<th data-col="1">B</th>`)
	assert.Contains(t, body, `<td data-row="0" data-col="0">&lt;b&gt;x&lt;/b&gt;</td>`)
	assert.Contains(t, body, `<td data-row="1" data-col="1"></td>`)
	assert.Equal(t, 4, bytes.Count(w.Body.Bytes(), []byte("<td ")))

	// the page edits through the store endpoints
	assert.Regexp(t, `const apiPath = "\\?/api\\?/data";`, body)
	assert.Contains(t, body, `"/api/cell/" + cell.dataset.row`)
	assert.Contains(t, body, `"/api/header/" + header.dataset.col`)
	for _, id := range []string{"copyApiUrl", "addRow", "addColumn", "clearTable", "loadData"} {
		assert.Contains(t, body, `id="`+id+`"`)
	}
}
