package editor

import (
	"bytes"
	"context"
	"fmt"
	"github.com/BeiChenYi/webbapi/contracts"
	json "github.com/bytedance/sonic"
	"io"
	"net/http"
	"strings"
)

const DocumentPath = "/api/data"

// ResponseError is returned for any non 2xx answer of the store service.
type ResponseError struct {
	Code    int
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.Code)
}

type documentPayload struct {
	Rows    *int       `json:"rows"`
	Cols    *int       `json:"cols"`
	Headers []string   `json:"headers"`
	Data    [][]string `json:"data"`
}

type acknowledgment struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// StoreClient talks to the document store service over HTTP. Requests carry no
// timeout of their own, cancel ctx to abandon one.
type StoreClient struct {
	baseUrl    string
	httpClient *http.Client
}

func NewStoreClient(baseUrl string) *StoreClient {
	return &StoreClient{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		httpClient: &http.Client{},
	}
}

func (c *StoreClient) Fetch(ctx context.Context) (*contracts.GridDocument, error) {
	body, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	payload := documentPayload{}
	if err = json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	document := &contracts.GridDocument{
		Rows:    contracts.DefaultRows,
		Cols:    contracts.DefaultCols,
		Headers: payload.Headers,
		Data:    payload.Data,
	}
	if payload.Rows != nil {
		document.Rows = *payload.Rows
	}
	if payload.Cols != nil {
		document.Cols = *payload.Cols
	}

	return document, nil
}

func (c *StoreClient) Push(ctx context.Context, document *contracts.GridDocument) (string, error) {
	payload, err := json.Marshal(document)
	if err != nil {
		return "", err
	}

	body, err := c.do(ctx, http.MethodPut, payload)
	if err != nil {
		return "", err
	}

	ack := acknowledgment{}
	if err = json.Unmarshal(body, &ack); err != nil {
		return "", fmt.Errorf("decode acknowledgment: %w", err)
	}

	return ack.Message, nil
}

func (c *StoreClient) do(ctx context.Context, method string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseUrl+DocumentPath, reader)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		request.Header.Set("Content-Type", JsonContentType)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		ack := acknowledgment{}
		_ = json.Unmarshal(body, &ack)
		return nil, &ResponseError{Code: response.StatusCode, Message: ack.Error}
	}

	return body, nil
}
