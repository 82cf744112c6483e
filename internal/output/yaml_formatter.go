package output

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders the plan result as YAML. Results are built from their
// flattened fields so values come out as plain numbers in field order.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	root := mappingNode()
	appendPair(root, "name", stringNode(results.Name))

	list := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i := range results.Results {
		list.Content = append(list.Content, calculationNode(&results.Results[i]))
	}
	appendPair(root, "results", list)
	appendPair(root, "failed", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(results.Failed)})

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func calculationNode(cr *domain.CalculationResult) *yaml.Node {
	n := mappingNode()
	appendPair(n, "name", stringNode(cr.Name))
	appendPair(n, "calculator", stringNode(string(cr.Kind)))
	if cr.Failed() {
		appendPair(n, "error", stringNode(cr.Error))
		if cr.ErrorField != "" {
			appendPair(n, "error_field", stringNode(cr.ErrorField))
		}
		return n
	}

	result := mappingNode()
	for _, f := range resultFields(cr) {
		setPath(result, strings.Split(f.Key, "."), numberNode(f.Value))
	}
	appendPair(n, "result", result)
	return n
}

// setPath places value under the dotted path, creating intermediate mappings
func setPath(m *yaml.Node, path []string, value *yaml.Node) {
	if len(path) == 1 {
		appendPair(m, path[0], value)
		return
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == path[0] && m.Content[i+1].Kind == yaml.MappingNode {
			setPath(m.Content[i+1], path[1:], value)
			return
		}
	}
	child := mappingNode()
	appendPair(m, path[0], child)
	setPath(child, path[1:], value)
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func numberNode(d decimal.Decimal) *yaml.Node {
	s := d.String()
	tag := "!!int"
	if strings.Contains(s, ".") {
		tag = "!!float"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, stringNode(key), value)
}
