package assemble

import (
	"fmt"

	"github.com/vk/isebuild/internal/dag"
)

// link fills in After for every command from the files the stages produce
// and read, and fails unless the commands are already in an order in which
// each one runs after the stages it reads from.
func link(cmds []Command) error {
	g := dag.New()
	producer := make(map[string]string)
	for _, c := range cmds {
		g.AddNode(c.Tool)
		for _, out := range c.Outputs {
			producer[out] = c.Tool
		}
	}
	for _, c := range cmds {
		for _, in := range c.Inputs {
			from, ok := producer[in]
			if !ok || from == c.Tool {
				continue
			}
			if err := g.AddEdge(from, c.Tool); err != nil {
				return err
			}
		}
	}

	order, err := g.TopologicalSort()
	if err != nil {
		return fmt.Errorf("linking stages: %w", err)
	}
	for i := range cmds {
		if order[i] != cmds[i].Tool {
			return fmt.Errorf("linking stages: %s is planned before %s", cmds[i].Tool, order[i])
		}
		after, err := g.Dependencies(cmds[i].Tool)
		if err != nil {
			return err
		}
		if len(after) > 0 {
			cmds[i].After = after
		}
	}
	return nil
}
