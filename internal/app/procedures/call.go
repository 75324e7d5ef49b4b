// Package procedures invokes named stored procedures with parameters bound by
// name and returns their first recordset together with any output parameters.
package procedures

import "strings"

// Param is a single named procedure parameter
type Param struct {
	Name   string
	Type   Type
	Value  any
	Output bool
}

// Call describes one stored procedure invocation. Parameters keep their
// declaration order.
type Call struct {
	Name   string
	Params []Param
}

// New starts a call to the named procedure
func New(name string) *Call {
	return &Call{Name: name}
}

// In appends an input parameter
func (c *Call) In(name string, t Type, value any) *Call {
	c.Params = append(c.Params, Param{Name: name, Type: t, Value: value})
	return c
}

// Out appends an output parameter
func (c *Call) Out(name string, t Type) *Call {
	c.Params = append(c.Params, Param{Name: name, Type: t, Output: true})
	return c
}

// Inputs returns the input parameters in declaration order
func (c *Call) Inputs() []Param {
	inputs := make([]Param, 0, len(c.Params))
	for _, p := range c.Params {
		if !p.Output {
			inputs = append(inputs, p)
		}
	}
	return inputs
}

// Outputs returns the names of the output parameters
func (c *Call) Outputs() []string {
	var outputs []string
	for _, p := range c.Params {
		if p.Output {
			outputs = append(outputs, p.Name)
		}
	}
	return outputs
}

// folded returns a copy of c with lowercased procedure and parameter names
func (c *Call) folded() *Call {
	out := &Call{Name: strings.ToLower(c.Name), Params: make([]Param, len(c.Params))}
	for i, p := range c.Params {
		p.Name = strings.ToLower(p.Name)
		out.Params[i] = p
	}
	return out
}

// coerce converts every input value to its declared type
func (c *Call) coerce() ([]any, error) {
	inputs := c.Inputs()
	values := make([]any, 0, len(inputs))
	for _, p := range inputs {
		v, err := p.Type.Coerce(p.Name, p.Value)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Row is one record of a recordset keyed by column name
type Row map[string]any

// Result holds what a procedure returned
type Result struct {
	Recordset []Row
	Output    map[string]any
}

// FirstInt returns the integer value of column in the first row, or 0 when the
// recordset is empty or the value is missing.
func (r *Result) FirstInt(column string) int64 {
	if r == nil || len(r.Recordset) == 0 {
		return 0
	}
	switch v := r.Recordset[0][column].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// OutputValue returns the named output parameter, nil when not set
func (r *Result) OutputValue(name string) any {
	if r == nil || r.Output == nil {
		return nil
	}
	return r.Output[name]
}
