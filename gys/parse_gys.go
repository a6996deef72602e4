package gys

import "strings"

// parseGYS lexes raw GYS text (already assumed to be GYS, not longhand)
// into a flat list of steps, with no macro expansion.
func parseGYS(text string) ([]Step, error) {
	text = stripComments(text)
	text = stripWrapping(text)
	text = strings.TrimSpace(text)

	rawSteps := strings.Split(text, "|")
	steps := make([]Step, 0, len(rawSteps))
	for _, raw := range rawSteps {
		step, err := parseGYSStep(raw)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// parseGYSStep lexes a single "name tok tok …" segment into a Step.
func parseGYSStep(raw string) (Step, error) {
	raw = stripStepComment(raw)
	elements := strings.Fields(raw)
	n := len(elements)
	if n == 0 {
		return Step{}, ErrEmptyStep
	}

	name := elements[0]
	if name == "" {
		return Step{}, ErrEmptyName
	}

	args := make([]Arg, 0, n-1)
	for i := 1; i < n; i++ {
		e := elements[i]
		if e == "" {
			// Consumed as the value half of a "key: value" pair below.
			continue
		}

		if strings.HasSuffix(e, ":") {
			if i == n-1 {
				return Step{}, ErrDanglingKey
			}
			key := strings.TrimSuffix(e, ":")
			args = append(args, Arg{Key: key, Value: elements[i+1]})
			elements[i+1] = ""
			continue
		}

		if idx := strings.IndexByte(e, ':'); idx >= 0 {
			args = append(args, Arg{Key: e[:idx], Value: e[idx+1:]})
			continue
		}

		args = append(args, Arg{Key: e, Value: "true"})
	}

	return Step{Name: name, Args: args}, nil
}
