package theme

import (
	"encoding/json"
	"os"

	idaerrors "github.com/idawm/idatheme/pkg/errors"
)

// LoadDocument reads and validates a theme.json file.
func LoadDocument(path string) (*Document, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, idaerrors.NewParseError(path, err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadSemantic reads and validates a semantic.json file.
func LoadSemantic(path string) (Semantic, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	var semantic Semantic
	if err := json.Unmarshal(data, &semantic); err != nil {
		return nil, idaerrors.NewParseError(path, err)
	}

	if err := ValidateSemantic(semantic); err != nil {
		return nil, err
	}

	return semantic, nil
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, idaerrors.NewMissingInputError(path)
		}
		return nil, idaerrors.NewParseError(path, err)
	}
	return data, nil
}
