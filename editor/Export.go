package editor

import (
	"fmt"
	"github.com/BeiChenYi/webbapi/contracts"
	json "github.com/bytedance/sonic"
	"github.com/xuri/excelize/v2"
	"time"
)

const JsonContentType = "application/json"

const WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const WorkbookSheetName = "Sheet1"

// ExportFileName is the download name for an export made at now, e.g. table-data-2024-05-01.json
func ExportFileName(now time.Time, extension string) string {
	return fmt.Sprintf("table-data-%s.%s", now.UTC().Format(time.DateOnly), extension)
}

// Export hands the full local state as indented JSON to the downloader.
func (t *Table) Export() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	content, err := json.ConfigStd.MarshalIndent(t.document, "", "  ")
	if err != nil {
		t.status.error("Export failed: " + err.Error())
		return "", err
	}

	filename := ExportFileName(t.clock.Now(), "json")
	if err = t.download(filename, JsonContentType, content); err != nil {
		return "", err
	}

	t.status.success("Data exported as JSON file")
	return filename, nil
}

// ExportWorkbook hands the local state as an XLSX workbook with the headers in the first row.
func (t *Table) ExportWorkbook() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	content, err := buildWorkbook(t.document)
	if err != nil {
		t.status.error("Export failed: " + err.Error())
		return "", err
	}

	filename := ExportFileName(t.clock.Now(), "xlsx")
	if err = t.download(filename, WorkbookContentType, content); err != nil {
		return "", err
	}

	t.status.success("Data exported as XLSX file")
	return filename, nil
}

func (t *Table) download(filename string, contentType string, content []byte) error {
	err := ErrNoDownloader
	if t.downloader != nil {
		err = t.downloader.Download(filename, contentType, content)
	}

	if err != nil {
		t.status.error("Export failed: " + err.Error())
	}
	return err
}

func buildWorkbook(document *contracts.GridDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := setWorkbookRow(f, 1, document.Headers); err != nil {
		return nil, err
	}

	for row, cells := range document.Data {
		if err := setWorkbookRow(f, row+2, cells); err != nil {
			return nil, err
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func setWorkbookRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	return f.SetSheetRow(WorkbookSheetName, cell, &values)
}
