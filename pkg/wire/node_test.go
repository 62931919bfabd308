package wire

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNodeMarshalRoot(t *testing.T) {
	n := &Node{
		ID:         "win-1",
		Type:       "vtkRenderWindow",
		Properties: map[string]any{"numberOfLayers": 1},
	}

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	if !strings.HasPrefix(got, `{"parent":null,`) {
		t.Errorf("root parent must serialize as null, got %s", got)
	}
	if strings.Contains(got, `"calls"`) {
		t.Errorf("nil calls must be omitted, got %s", got)
	}
	if strings.Contains(got, `"dependencies"`) {
		t.Errorf("nil dependencies must be omitted, got %s", got)
	}
}

func TestNodeMarshalEmptySlices(t *testing.T) {
	n := &Node{
		Parent:       "win-1",
		ID:           "ren-1",
		Type:         "vtkRenderer",
		Calls:        []Call{},
		Dependencies: []*Node{},
	}

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	if !strings.Contains(got, `"calls":[]`) {
		t.Errorf("empty calls must serialize as [], got %s", got)
	}
	if !strings.Contains(got, `"dependencies":[]`) {
		t.Errorf("empty dependencies must serialize as [], got %s", got)
	}
	if !strings.Contains(got, `"properties":{}`) {
		t.Errorf("nil properties must serialize as {}, got %s", got)
	}
	if !strings.Contains(got, `"parent":"win-1"`) {
		t.Errorf("parent reference missing, got %s", got)
	}
}

func TestNodeRoundTrip(t *testing.T) {
	orig := &Node{
		ID:   "win-1",
		Type: "vtkRenderWindow",
		Properties: map[string]any{
			"numberOfLayers": float64(2),
		},
		Calls: []Call{
			NewCall("addRenderer", WrapID("ren-1")),
		},
		Dependencies: []*Node{
			{
				Parent: "win-1",
				ID:     "ren-1",
				Type:   "vtkRenderer",
				Calls:  []Call{},
			},
		},
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}

	var got Node
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}

	if got.Parent != "" {
		t.Errorf("root parent = %q, want empty", got.Parent)
	}
	if got.Type != "vtkRenderWindow" {
		t.Errorf("type = %q", got.Type)
	}
	if len(got.Calls) != 1 || got.Calls[0].Method != "addRenderer" {
		t.Fatalf("calls = %+v", got.Calls)
	}
	if got.Calls[0].Args[0] != "instance:${ren-1}" {
		t.Errorf("call arg = %v", got.Calls[0].Args[0])
	}
	if len(got.Dependencies) != 1 {
		t.Fatalf("dependencies = %+v", got.Dependencies)
	}
	dep := got.Dependencies[0]
	if dep.Calls == nil || len(dep.Calls) != 0 {
		t.Errorf("empty calls list must survive the round trip, got %+v", dep.Calls)
	}
	if dep.Dependencies != nil {
		t.Errorf("absent dependencies must stay nil, got %+v", dep.Dependencies)
	}
}

func TestCallMarshalTuple(t *testing.T) {
	data, err := json.Marshal(NewCall("setMapper", WrapID("mapper-1")))
	if err != nil {
		t.Fatal(err)
	}
	want := `["setMapper",["instance:${mapper-1}"]]`
	if string(data) != want {
		t.Errorf("call = %s, want %s", data, want)
	}

	// Zero-argument calls still carry an empty args array.
	data, err = json.Marshal(Call{Method: "removeAllLights"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `["removeAllLights",[]]` {
		t.Errorf("zero-arg call = %s", data)
	}
}

func TestCallUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a tuple", `"setMapper"`},
		{"wrong arity", `["setMapper"]`},
		{"non-string method", `[42, []]`},
		{"non-array args", `["setMapper", "oops"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Call
			if err := json.Unmarshal([]byte(tt.input), &c); err == nil {
				t.Errorf("expected error for %s", tt.input)
			}
		})
	}
}

func TestWrapID(t *testing.T) {
	if got := WrapID("actor-1"); got != "instance:${actor-1}" {
		t.Errorf("WrapID = %q", got)
	}
}

func TestWalk(t *testing.T) {
	tree := &Node{
		ID: "a",
		Dependencies: []*Node{
			{ID: "b", Dependencies: []*Node{{ID: "c"}}},
			{ID: "d"},
		},
	}

	var order []string
	count := tree.Walk(func(n *Node) { order = append(order, n.ID) })

	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	want := []string{"a", "b", "c", "d"}
	for i, id := range want {
		if order[i] != id {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	var nilNode *Node
	if got := nilNode.Walk(nil); got != 0 {
		t.Errorf("nil walk count = %d", got)
	}
}

func TestArrayDescriptorJSON(t *testing.T) {
	desc := ArrayDescriptor{
		Hash:               "wkvYpYXpYtrkORqJPrAMZw_12f",
		VTKClass:           PointsClass,
		Name:               "points",
		DataType:           "Float32Array",
		NumberOfComponents: 3,
		Size:               36,
		Ranges: []Range{
			{Min: -1, Max: 1, Component: "X"},
			{Min: -1, Max: 1},
		},
	}

	data, err := json.Marshal(desc)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	if strings.Contains(got, `"location"`) || strings.Contains(got, `"registration"`) {
		t.Errorf("empty annotations must be omitted, got %s", got)
	}
	// The combined range entry carries no component name.
	if !strings.Contains(got, `{"min":-1,"max":1}`) {
		t.Errorf("combined range missing component omission, got %s", got)
	}
}
