package server

import (
	"encoding/json"
	"net/http"

	"go.trai.ch/ponder/internal/core/domain"
)

type typesResponse struct {
	Types   []typeJSON  `json:"types"`
	Queries []fieldJSON `json:"queries"`
}

type typeJSON struct {
	Name   string      `json:"name"`
	Kind   string      `json:"kind"`
	Fields []fieldJSON `json:"fields,omitempty"`
	Values []string    `json:"values,omitempty"`
}

type fieldJSON struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Entity string `json:"entity,omitempty"`
}

func (s *Server) routes(schema *domain.GqlSchemaDef) http.Handler {
	types := typesBody(schema)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /graphql", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(schema.SDL))
	})
	mux.HandleFunc("GET /graphql/types", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types)
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.HandleFunc("GET /events", s.hub.serve)
	return mux
}

func typesBody(schema *domain.GqlSchemaDef) typesResponse {
	body := typesResponse{Types: []typeJSON{}, Queries: []fieldJSON{}}
	for _, t := range schema.Types {
		tj := typeJSON{Name: t.Name, Kind: t.Kind, Values: t.Values}
		for _, f := range t.Fields {
			tj.Fields = append(tj.Fields, fieldJSON{Name: f.Name, Type: f.Type})
		}
		body.Types = append(body.Types, tj)
	}
	for _, q := range schema.Queries {
		body.Queries = append(body.Queries, fieldJSON{Name: q.Name, Type: q.Type, Entity: q.Entity})
	}
	return body
}
