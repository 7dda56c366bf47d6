package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk YAML shape for a catalog override.
type catalogFile struct {
	Courses []struct {
		Code          string   `yaml:"code"`
		Name          string   `yaml:"name"`
		Credits       int      `yaml:"credits"`
		Prerequisites []string `yaml:"prerequisites"`
	} `yaml:"courses"`
	Equivalencies []struct {
		OldCode string `yaml:"old_code"`
		OldName string `yaml:"old_name"`
		NewCode string `yaml:"new_code"`
	} `yaml:"equivalencies"`
}

// LoadFile reads a catalog and equivalency table from a YAML file and
// builds a validated Catalog. The same structural checks apply as for
// the built-in seed.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a validated Catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	courses := make([]Course, 0, len(f.Courses))
	for _, c := range f.Courses {
		courses = append(courses, Course{
			Code:          c.Code,
			Name:          c.Name,
			Credits:       c.Credits,
			Prerequisites: c.Prerequisites,
		})
	}

	rules := make([]EquivalencyRule, 0, len(f.Equivalencies))
	for _, r := range f.Equivalencies {
		rules = append(rules, EquivalencyRule{
			OldCode: r.OldCode,
			OldName: r.OldName,
			NewCode: r.NewCode,
		})
	}

	return New(courses, rules)
}
