package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocIsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not JSON: %v", err)
	}
	if !strings.Contains(doc, "/objects/{name}/redefine") {
		t.Fatalf("doc misses redefine route")
	}
	if parsed["info"].(map[string]any)["title"] != "homogebra API" {
		t.Fatalf("unexpected title: %v", parsed["info"])
	}
}
