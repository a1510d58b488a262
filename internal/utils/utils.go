package utils

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/takoeight0821/rdp/internal/token"
	"gopkg.in/yaml.v3"
)

type ErrorAt struct {
	Where token.Token
	Err   error
}

func (e ErrorAt) Error() string {
	if e.Where.Kind == token.EOF {
		return fmt.Sprintf("at end: %s", e.Err.Error())
	}

	return fmt.Sprintf("at %d: `%s`, %s", e.Where.Line, e.Where.Lexeme, e.Err.Error())
}

func (e ErrorAt) Unwrap() error {
	return e.Err
}

// TestData is one entry of testdata/testcase.yaml.
// Input holds the tokens separated by white space; Expected is "accept" or "reject".
type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected string
}

// Lines returns the input in the one-token-per-line file format.
func (d TestData) Lines() string {
	fields := strings.Fields(d.Input)
	if len(fields) == 0 {
		return ""
	}

	return strings.Join(fields, "\n") + "\n"
}

func ReadTestData(s []byte) ([]TestData, error) {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		return nil, fmt.Errorf("testdata: %w", err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data, nil
}

// FindSourceFiles returns the token files (*.tok) under dir.
func FindSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".tok" {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", dir, err)
	}

	return files, nil
}
