package main

import (
	"errors"
	"fmt"
	"github.com/BeiChenYi/webbapi/contracts"
	json "github.com/bytedance/sonic"
	"os"
	"path/filepath"
)

type JsonFileStorage struct {
	path string
}

func NewJsonFileStorage(path string) *JsonFileStorage {
	return &JsonFileStorage{path: path}
}

func (s *JsonFileStorage) Load() (*contracts.GridDocument, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	document := &contracts.GridDocument{}
	if err = json.Unmarshal(data, document); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	return document, nil
}

// Save overwrites the file with the whole document, going through a temp file and rename.
func (s *JsonFileStorage) Save(document *contracts.GridDocument) error {
	data, err := json.ConfigStd.MarshalIndent(document, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

func (s *JsonFileStorage) Close() error {
	return nil
}
