package export

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/dag"
)

type yamlInput struct {
	Name string  `yaml:"name"`
	Coef float64 `yaml:"coef"`
}

type yamlNode struct {
	Name      string      `yaml:"name"`
	Kind      Kind        `yaml:"kind"`
	Speed     float64     `yaml:"speed"`
	Factories float64     `yaml:"factories"`
	Inputs    []yamlInput `yaml:"inputs,omitempty"`
}

type yamlPlan struct {
	Targets []string   `yaml:"targets"`
	Nodes   []yamlNode `yaml:"nodes"`
}

// WriteYAML writes the plan rooted at targets as a YAML document listing
// every node in walk order.
func WriteYAML(w io.Writer, targets []*dag.Node) error {
	doc := yamlPlan{Targets: make([]string, 0, len(targets))}
	for _, t := range targets {
		doc.Targets = append(doc.Targets, t.Name)
	}

	Walk(targets, func(n *dag.Node) {
		yn := yamlNode{
			Name:      n.Name,
			Kind:      Classify(n),
			Speed:     n.Speed,
			Factories: n.NumFactory,
		}
		for _, e := range n.Before {
			yn.Inputs = append(yn.Inputs, yamlInput{Name: e.Node.Name, Coef: e.Coef})
		}
		doc.Nodes = append(doc.Nodes, yn)
	})

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	_, err = w.Write(out)
	return err
}
