package crawl

import (
	"encoding/json"
	"os"

	"scriptura"
)

// Language is one entry of the languages input file, a JSON array of
// objects carrying at least a "code" key.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// LoadLanguageCodes reads a languages file and returns its codes in file
// order, dropping entries without a code. A non-empty whitelist keeps only
// the listed codes.
func LoadLanguageCodes(path string, whitelist []string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, scriptura.Errorf(scriptura.EINVALID, "read languages file: %v", err)
	}

	var langs []Language
	if err := json.Unmarshal(data, &langs); err != nil {
		return nil, scriptura.Errorf(scriptura.EINVALID, "parse languages file %s: %v", path, err)
	}

	allow := make(map[string]bool, len(whitelist))
	for _, code := range whitelist {
		if code != "" {
			allow[code] = true
		}
	}

	var codes []string
	for _, l := range langs {
		if l.Code == "" {
			continue
		}
		if len(allow) > 0 && !allow[l.Code] {
			continue
		}
		codes = append(codes, l.Code)
	}
	return codes, nil
}
