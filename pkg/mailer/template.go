package mailer

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Frontmatter is the YAML header of a template.
type Frontmatter struct {
	Subject string   `yaml:"subject"`
	ReplyTo string   `yaml:"reply_to"`
	Layout  string   `yaml:"layout"`
	Tags    []string `yaml:"tags"`
}

// Template is a parsed template file.
type Template struct {
	Frontmatter Frontmatter
	Body        string
}

// ParseTemplate splits content into YAML frontmatter and markdown body.
// Frontmatter is optional; it must open on the first line and close with a
// line containing only "---".
func ParseTemplate(content []byte) (*Template, error) {
	first, rest := nextLine(content)
	if first != delimiter {
		return &Template{Body: string(content)}, nil
	}

	var header bytes.Buffer
	for len(rest) > 0 {
		var line string
		line, rest = nextLine(rest)
		if line != delimiter {
			header.WriteString(line)
			header.WriteByte('\n')
			continue
		}

		var fm Frontmatter
		if err := yaml.Unmarshal(header.Bytes(), &fm); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
		return &Template{Frontmatter: fm, Body: string(rest)}, nil
	}

	return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
}

func nextLine(b []byte) (string, []byte) {
	line, rest, _ := bytes.Cut(b, []byte("\n"))
	return strings.TrimRight(string(line), "\r"), rest
}
