// Package typegen writes the generated sources derived from the configuration and schema.
package typegen

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
)

// Generated file names.
const (
	ContractsFile = "contracts.go"
	HandlersFile  = "handlers.go"
	SchemaFile    = "schema.graphql"
	EntitiesFile  = "entities.go"
	ContextFile   = "context.go"
)

// Stamp opens every generated Go file.
const Stamp = "// Code generated by ponder. DO NOT EDIT."

// SchemaStamp opens the generated schema file.
const SchemaStamp = "# Code generated by ponder. DO NOT EDIT."

// Generator implements ports.TypeGenerator.
// Files are replaced wholesale so readers never see a partial file.
type Generator struct {
	dir    string
	pkg    string
	logger ports.Logger
}

var _ ports.TypeGenerator = (*Generator)(nil)

// NewGenerator creates a Generator writing into dir.
// The Go package is named after the directory.
func NewGenerator(dir string, logger ports.Logger) *Generator {
	return &Generator{dir: dir, pkg: packageName(dir), logger: logger}
}

// Dir returns the output directory.
func (g *Generator) Dir() string {
	return g.dir
}

// GenerateContractTypes writes one event struct per ABI event of every contract.
func (g *Generator) GenerateContractTypes(cfg *domain.Config) error {
	return g.writeGo(ContractsFile, contractsTemplate, contractsData(g.pkg, cfg))
}

// GenerateHandlerTypes writes one handler signature per contract event and the handler registry.
func (g *Generator) GenerateHandlerTypes(cfg *domain.Config) error {
	return g.writeGo(HandlersFile, handlersTemplate, contractsData(g.pkg, cfg))
}

// GenerateSchema writes the API schema document.
func (g *Generator) GenerateSchema(schema *domain.GqlSchemaDef) error {
	content := SchemaStamp + "\n\n" + schema.SDL
	return g.write(SchemaFile, []byte(content))
}

// GenerateEntityTypes writes one struct per entity and one string type per enum.
func (g *Generator) GenerateEntityTypes(schema *domain.GqlSchemaDef) error {
	return g.writeGo(EntitiesFile, entitiesTemplate, entitiesData(g.pkg, schema))
}

// GenerateContextType writes the entity and contract bindings of the handler context.
func (g *Generator) GenerateContextType(hc *domain.Context) error {
	return g.writeGo(ContextFile, contextTemplate, contextData(g.pkg, hc))
}

func (g *Generator) writeGo(name string, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "file", name)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "file", name)
	}
	return g.write(name, src)
}

// write replaces the file through a temporary file and a rename.
func (g *Generator) write(name string, content []byte) error {
	if err := os.MkdirAll(g.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "file", name)
	}

	tmp, err := os.CreateTemp(g.dir, "."+name+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "file", name)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "file", name)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "file", name)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "file", name)
	}

	target := filepath.Join(g.dir, name)
	if err := os.Rename(tmp.Name(), target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "file", name)
	}

	if g.logger != nil {
		g.logger.Info("regenerated " + target)
	}
	return nil
}

func packageName(dir string) string {
	base := strings.ToLower(filepath.Base(filepath.Clean(dir)))
	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9' && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return domain.GeneratedDirName
	}
	return b.String()
}
