package typegen

import "text/template"

var contractsTemplate = template.Must(template.New(ContractsFile).Parse(`{{.Stamp}}

package {{.Package}}
{{if .NeedsBig}}
import "math/big"
{{end}}
{{- range .Contracts}}
{{if .ABIPath}}
// {{.Name}}ABIPath is the ABI file of the {{.Name}} contract.
const {{.Name}}ABIPath = {{printf "%q" .ABIPath}}
{{end}}
{{- range .Events}}
// {{.Struct}} is the decoded {{.Name}} event of {{.Contract}}.
type {{.Struct}} struct {
{{- range .Params}}
	{{.Field}} {{.GoType}} // {{.SolType}}{{if .Indexed}} indexed{{end}}
{{- end}}
}
{{end}}
{{- end}}
`))

var handlersTemplate = template.Must(template.New(HandlersFile).Parse(`{{.Stamp}}

package {{.Package}}
{{if .Events}}
import "context"
{{- range .Events}}

// {{.Handler}} handles {{.Name}} events of {{.Contract}}.
type {{.Handler}} func(ctx context.Context, event {{.Struct}}, hc *Context) error
{{- end}}
{{end}}
// Handlers registers one handler per contract event. Nil handlers are skipped.
type Handlers struct {
{{- range .Events}}
	{{.Field}} {{.Handler}}
{{- end}}
}
`))

var entitiesTemplate = template.Must(template.New(EntitiesFile).Parse(`{{.Stamp}}

package {{.Package}}
{{if .NeedsBig}}
import "math/big"
{{end}}
{{- range .Enums}}
// {{.Name}} is an enum of the schema.
type {{.Name}} string

// {{.Name}} values.
const (
{{- range .Values}}
	{{.Const}} {{.Enum}} = {{printf "%q" .Value}}
{{- end}}
)
{{end}}
{{- range .Entities}}
// {{.Name}} is an entity of the schema.
type {{.Name}} struct {
{{- range .Fields}}
	{{.Field}} {{.GoType}} ` + "`json:\"{{.Name}}\"`" + `
{{- end}}
}
{{end}}
`))

var contextTemplate = template.Must(template.New(ContextFile).Parse(`{{.Stamp}}

package {{.Package}}

// Entity names bound in the handler context.
const (
{{- range .Entities}}
	{{.Const}} = {{printf "%q" .Name}}
{{- end}}
)

// Contract is a contract bound to one network.
type Contract struct {
	Name    string
	Network string
	ChainID int64
	Address string
	Events  []string
}

// Context is handed to every handler.
type Context struct {
	Entities  []string
	Contracts []Contract
}

// Contracts lists the contract bindings of the handler context.
var Contracts = []Contract{
{{- range .Contracts}}
	{Name: {{printf "%q" .Name}}, Network: {{printf "%q" .Network}}, ChainID: {{.ChainID}}, Address: {{printf "%q" .Address}}{{if .Events}}, Events: []string{ {{- range $i, $e := .Events}}{{if $i}}, {{end}}{{printf "%q" $e}}{{end -}} }{{end}}},
{{- end}}
}
`))
