package pkg_openapi_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/studynova/ingest/pkg/openapi"
)

func TestSchemaRef(t *testing.T) {
	ref := openapi.SchemaRef("Session")
	if ref.Ref != "#/components/schemas/Session" {
		t.Errorf("Ref = %q, want #/components/schemas/Session", ref.Ref)
	}
}

func TestResponseRef(t *testing.T) {
	ref := openapi.ResponseRef("NotFound")
	if ref.Ref != "#/components/responses/NotFound" {
		t.Errorf("Ref = %q, want #/components/responses/NotFound", ref.Ref)
	}
}

func TestPathParams(t *testing.T) {
	uuid := openapi.PathParam("id", "Session identifier")
	if uuid.In != "path" || !uuid.Required {
		t.Errorf("PathParam = %+v, want required path parameter", uuid)
	}
	if uuid.Schema.Format != "uuid" {
		t.Errorf("PathParam format = %q, want uuid", uuid.Schema.Format)
	}

	str := openapi.StringPathParam("id", "Solution identifier")
	if str.Schema.Type != "string" || str.Schema.Format != "" {
		t.Errorf("StringPathParam schema = %+v, want plain string", str.Schema)
	}

	idx := openapi.IntPathParam("index", "Record index")
	if idx.Schema.Type != "integer" {
		t.Errorf("IntPathParam type = %q, want integer", idx.Schema.Type)
	}
}

func TestRequestBodyJSON(t *testing.T) {
	body := openapi.RequestBodyJSON("DecideCommand", true)
	if !body.Required {
		t.Error("Required = false, want true")
	}

	media, ok := body.Content["application/json"]
	if !ok {
		t.Fatal("missing application/json content")
	}
	if media.Schema.Ref != "#/components/schemas/DecideCommand" {
		t.Errorf("schema ref = %q", media.Schema.Ref)
	}
}

func TestNewComponents_Seeds(t *testing.T) {
	components := openapi.NewComponents()

	for _, name := range []string{"PageRequest", "SortField"} {
		if _, ok := components.Schemas[name]; !ok {
			t.Errorf("missing seeded schema %s", name)
		}
	}
	for _, name := range []string{"BadRequest", "NotFound", "Conflict"} {
		if _, ok := components.Responses[name]; !ok {
			t.Errorf("missing seeded response %s", name)
		}
	}
}

func TestComponents_AddSchemas_NoOverwrite(t *testing.T) {
	components := openapi.NewComponents()
	original := components.Schemas["PageRequest"]

	components.AddSchemas(map[string]*openapi.Schema{
		"PageRequest": {Type: "string"},
		"Session":     {Type: "object"},
	})

	if components.Schemas["PageRequest"] != original {
		t.Error("AddSchemas overwrote existing schema")
	}
	if _, ok := components.Schemas["Session"]; !ok {
		t.Error("AddSchemas did not add new schema")
	}
}

func TestComponents_AddResponses_NoOverwrite(t *testing.T) {
	components := openapi.NewComponents()
	original := components.Responses["NotFound"]

	components.AddResponses(map[string]*openapi.Response{
		"NotFound":     {Description: "changed"},
		"Unauthorized": {Description: "Missing or invalid token"},
	})

	if components.Responses["NotFound"] != original {
		t.Error("AddResponses overwrote existing response")
	}
	if _, ok := components.Responses["Unauthorized"]; !ok {
		t.Error("AddResponses did not add new response")
	}
}

func testSpec() *openapi.Spec {
	return &openapi.Spec{
		OpenAPI: "3.1.0",
		Info: &openapi.Info{
			Title:   "Study Nova Ingest API",
			Version: "0.1.0",
		},
		Paths: map[string]*openapi.PathItem{
			"/api/sessions": {
				Get: &openapi.Operation{
					Summary: "List sessions",
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("A page of sessions", "SessionPageResult"),
					},
				},
			},
		},
		Components: openapi.NewComponents(),
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := openapi.MarshalJSON(testSpec())
	if err != nil {
		t.Fatalf("MarshalJSON() = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded["openapi"] != "3.1.0" {
		t.Errorf("openapi = %v, want 3.1.0", decoded["openapi"])
	}

	paths, ok := decoded["paths"].(map[string]any)
	if !ok {
		t.Fatal("paths missing from output")
	}
	if _, ok := paths["/api/sessions"]; !ok {
		t.Error("missing /api/sessions path")
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")

	if err := openapi.WriteJSON(testSpec(), path); err != nil {
		t.Fatalf("WriteJSON() = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written spec: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("written spec is not valid JSON: %v", err)
	}
}

func TestWriteJSON_InvalidPath(t *testing.T) {
	err := openapi.WriteJSON(testSpec(), filepath.Join(t.TempDir(), "missing", "openapi.json"))
	if err == nil {
		t.Error("WriteJSON to missing directory = nil, want error")
	}
}
