package typegen

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"
	"go.trai.ch/ponder/internal/core/domain"
)

type header struct {
	Stamp   string
	Package string
}

type contractsView struct {
	header
	NeedsBig  bool
	Contracts []contractView
	Events    []eventView
}

type contractView struct {
	Name    string
	ABIPath string
	Events  []eventView
}

type eventView struct {
	Contract string
	Name     string
	Struct   string
	Handler  string
	Field    string
	Params   []paramView
}

type paramView struct {
	Field   string
	GoType  string
	SolType string
	Indexed bool
}

type entitiesView struct {
	header
	NeedsBig bool
	Enums    []enumView
	Entities []entityView
}

type enumView struct {
	Name   string
	Values []enumValueView
}

type enumValueView struct {
	Enum  string
	Const string
	Value string
}

type entityView struct {
	Name   string
	Fields []fieldView
}

type fieldView struct {
	Name   string
	Field  string
	GoType string
}

type contextView struct {
	header
	Entities  []entityNameView
	Contracts []domain.ContractBinding
}

type entityNameView struct {
	Const string
	Name  string
}

func contractsData(pkg string, cfg *domain.Config) contractsView {
	view := contractsView{header: header{Stamp: Stamp, Package: pkg}}

	for _, c := range cfg.Contracts {
		cv := contractView{Name: goName(c.Name), ABIPath: c.ABIPath}
		for _, ev := range c.Events {
			prefix := goName(c.Name) + goName(ev.Name)
			e := eventView{
				Contract: c.Name,
				Name:     ev.Name,
				Struct:   prefix + "Event",
				Handler:  prefix + "Handler",
				Field:    prefix,
			}
			for i, p := range ev.Inputs {
				name := p.Name
				if name == "" {
					name = fmt.Sprintf("arg%d", i)
				}
				typ := solidityGoType(p.Type)
				if strings.Contains(typ, "big.Int") {
					view.NeedsBig = true
				}
				e.Params = append(e.Params, paramView{Field: goName(name), GoType: typ, SolType: p.Type, Indexed: p.Indexed})
			}
			cv.Events = append(cv.Events, e)
			view.Events = append(view.Events, e)
		}
		view.Contracts = append(view.Contracts, cv)
	}
	return view
}

func entitiesData(pkg string, schema *domain.GqlSchemaDef) entitiesView {
	view := entitiesView{header: header{Stamp: Stamp, Package: pkg}}

	for _, t := range schema.Types {
		switch t.Kind {
		case domain.GqlKindEnum:
			ev := enumView{Name: t.Name}
			for _, v := range t.Values {
				ev.Values = append(ev.Values, enumValueView{Enum: t.Name, Const: t.Name + v, Value: v})
			}
			view.Enums = append(view.Enums, ev)
		case domain.GqlKindObject:
			ent := entityView{Name: t.Name}
			for _, f := range t.Fields {
				if f.GoType == "" {
					continue
				}
				if strings.Contains(f.GoType, "big.Int") {
					view.NeedsBig = true
				}
				ent.Fields = append(ent.Fields, fieldView{Name: f.Name, Field: goName(f.Name), GoType: f.GoType})
			}
			view.Entities = append(view.Entities, ent)
		}
	}
	return view
}

func contextData(pkg string, hc *domain.Context) contextView {
	view := contextView{header: header{Stamp: Stamp, Package: pkg}, Contracts: hc.Contracts}
	for _, name := range hc.Entities() {
		view.Entities = append(view.Entities, entityNameView{Const: "Entity" + goName(name), Name: name})
	}
	return view
}

// goName turns a schema or ABI name into an exported Go identifier.
func goName(name string) string {
	n := inflect.Camelize(name)
	switch {
	case n == "Id":
		return "ID"
	case strings.HasSuffix(n, "Id"):
		return strings.TrimSuffix(n, "Id") + "ID"
	}
	if n != "" && n[0] >= '0' && n[0] <= '9' {
		return "F" + n
	}
	return n
}

// solidityGoType maps an ABI type to the Go type of a decoded value.
func solidityGoType(sol string) string {
	if elem, ok := strings.CutSuffix(sol, "[]"); ok {
		return "[]" + solidityGoType(elem)
	}
	switch {
	case sol == "address", sol == "string":
		return "string"
	case sol == "bool":
		return "bool"
	case strings.HasPrefix(sol, "bytes"):
		return "[]byte"
	case strings.HasPrefix(sol, "uint"):
		return intType(sol, "uint")
	case strings.HasPrefix(sol, "int"):
		return intType(sol, "int")
	default:
		return "any"
	}
}

func intType(sol, prefix string) string {
	var bits int
	if _, err := fmt.Sscanf(strings.TrimPrefix(sol, prefix), "%d", &bits); err != nil {
		bits = 256
	}
	switch {
	case bits <= 8:
		return prefix + "8"
	case bits <= 16:
		return prefix + "16"
	case bits <= 32:
		return prefix + "32"
	case bits <= 64:
		return prefix + "64"
	default:
		return "*big.Int"
	}
}
