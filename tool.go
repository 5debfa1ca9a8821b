package allometry

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ============================================================
// Tool-call interface
// ============================================================

// ToolRequest is one JSON tool invocation.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// ToolResponse carries either a result or an error. Kind classifies the
// error: config, lookup, domain, convergence, request or internal.
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
	Kind   string      `json:"kind,omitempty"`
}

// RelationshipInfo describes one registered equation.
type RelationshipInfo struct {
	Independent  string    `json:"independent"`
	Dependent    string    `json:"dependent"`
	Form         string    `json:"form"`
	Coefficients []float64 `json:"coefficients"`
	Formula      string    `json:"formula"`
}

// SpeciesInfo describes one registered species.
type SpeciesInfo struct {
	Code          string `json:"code"`
	Name          string `json:"name,omitempty"`
	Relationships int    `json:"relationships"`
}

// HandleToolCall dispatches req against the registry. It never panics on
// malformed parameters; they come back with Kind "request".
func (r *Registry) HandleToolCall(req ToolRequest) ToolResponse {
	p := toolParams(req.Params)

	switch req.Tool {
	case "predict", "invert":
		code, err := p.str("species")
		if err != nil {
			return requestError(err)
		}
		ind, err := p.str("independent")
		if err != nil {
			return requestError(err)
		}
		dep, err := p.str("dependent")
		if err != nil {
			return requestError(err)
		}
		v, err := p.num("value")
		if err != nil {
			return requestError(err)
		}
		var out float64
		if req.Tool == "predict" {
			out, err = r.Predict(code, ind, dep, v)
		} else {
			out, err = r.Invert(code, ind, dep, v)
		}
		if err != nil {
			return errorResponse(err)
		}
		return numberResponse(out)

	case "evaluate", "solve_inverse":
		tag, err := p.str("form")
		if err != nil {
			return requestError(err)
		}
		coeffs, err := p.nums("coefficients")
		if err != nil {
			return requestError(err)
		}
		v, err := p.num("value")
		if err != nil {
			return requestError(err)
		}
		form, err := ParseForm(tag)
		if err != nil {
			return errorResponse(err)
		}
		eq, err := NewEquation(form, CoefficientsOf(coeffs))
		if err != nil {
			return errorResponse(err)
		}
		var out float64
		if req.Tool == "evaluate" {
			out, err = eq.Evaluate(v)
		} else {
			out, err = r.solver.Invert(eq, v)
		}
		if err != nil {
			return errorResponse(err)
		}
		return numberResponse(out)

	case "list_species":
		codes := r.Codes()
		out := make([]SpeciesInfo, 0, len(codes))
		for _, c := range codes {
			sp := r.species[c]
			out = append(out, SpeciesInfo{Code: sp.Code, Name: sp.Name, Relationships: len(sp.equations)})
		}
		return ToolResponse{Result: out, String: fmt.Sprintf("%d species", len(out))}

	case "list_relationships":
		code, err := p.str("species")
		if err != nil {
			return requestError(err)
		}
		sp, ok := r.Species(code)
		if !ok {
			return errorResponse(lookupErr("list relationships", "unknown species %q", code))
		}
		keys := sp.Relationships()
		out := make([]RelationshipInfo, 0, len(keys))
		for _, k := range keys {
			eq := sp.equations[k]
			out = append(out, RelationshipInfo{
				Independent:  k.Independent,
				Dependent:    k.Dependent,
				Form:         eq.form.String(),
				Coefficients: eq.coeffs.Values(),
				Formula:      eq.Formula(),
			})
		}
		return ToolResponse{Result: out, String: fmt.Sprintf("%d relationships for %s", len(out), code)}

	case "tool_spec":
		return ToolResponse{Result: ToolSpec(), String: "tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool), Kind: "request"}
}

func numberResponse(v float64) ToolResponse {
	return ToolResponse{Result: v, String: strconv.FormatFloat(v, 'g', -1, 64)}
}

func errorResponse(err error) ToolResponse {
	kind := KindOf(err)
	if kind == "" {
		kind = "internal"
	}
	return ToolResponse{Error: err.Error(), Kind: kind}
}

func requestError(err error) ToolResponse {
	return ToolResponse{Error: err.Error(), Kind: "request"}
}

// toolParams reads typed values out of decoded JSON.
type toolParams map[string]interface{}

func (p toolParams) str(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("missing param %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("param %q must be a string", key)
	}
	return s, nil
}

func (p toolParams) num(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("missing param %q", key)
	}
	return toFloat(key, v)
}

func (p toolParams) nums(key string) ([]float64, error) {
	v, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("missing param %q", key)
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("param %q must be an array of numbers", key)
	}
	out := make([]float64, 0, len(list))
	for _, item := range list {
		f, err := toFloat(key, item)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func toFloat(key string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	case int:
		return float64(n), nil
	}
	return 0, fmt.Errorf("param %q must be a number", key)
}

// ============================================================
// Tool schema
// ============================================================

// ToolSpec returns the JSON schema of every tool HandleToolCall accepts.
func ToolSpec() string {
	lookup := []toolParam{
		{"species", "string", "species code, e.g. ACRU"},
		{"independent", "string", "independent variable name, matched verbatim"},
		{"dependent", "string", "dependent variable name, matched verbatim"},
		{"value", "number", "measurement to evaluate or invert"},
	}
	adhoc := []toolParam{
		{"form", "string", "equation form tag: " + strings.Join(formTags(), ", ")},
		{"coefficients", "number[]", "coefficients a..e in order; count must match the form"},
		{"value", "number", "x for evaluate, y for solve_inverse"},
	}
	tools := []toolSchema{
		{"predict", "Predict the dependent variable of a species relationship from a measurement", lookup},
		{"invert", "Estimate the independent variable of a species relationship from an observed dependent value", lookup},
		{"evaluate", "Evaluate an ad hoc equation form with coefficients a..e at x", adhoc},
		{"solve_inverse", "Solve an ad hoc equation form for x given y", adhoc},
		{"list_species", "List registered species codes and names", nil},
		{"list_relationships", "List the equations registered for a species", lookup[:1]},
		{"tool_spec", "Return this tool schema", nil},
	}
	out := make([]map[string]interface{}, len(tools))
	for i, t := range tools {
		out[i] = t.schema()
	}
	b, _ := json.MarshalIndent(map[string]interface{}{"tools": out}, "", "  ")
	return string(b)
}

// toolParam is one required tool parameter. A type ending in "[]" is an
// array of that item type.
type toolParam struct {
	name, typ, description string
}

type toolSchema struct {
	name, description string
	params            []toolParam
}

func (t toolSchema) schema() map[string]interface{} {
	properties := map[string]interface{}{}
	required := make([]string, 0, len(t.params))
	for _, p := range t.params {
		prop := map[string]interface{}{"type": p.typ, "description": p.description}
		if item, ok := strings.CutSuffix(p.typ, "[]"); ok {
			prop["type"] = "array"
			prop["items"] = map[string]interface{}{"type": item}
		}
		properties[p.name] = prop
		required = append(required, p.name)
	}
	return map[string]interface{}{
		"name":        t.name,
		"description": t.description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

func formTags() []string {
	forms := Forms()
	tags := make([]string, len(forms))
	for i, f := range forms {
		tags[i] = f.String()
	}
	return tags
}
