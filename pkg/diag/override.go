package diag

import "fmt"

// Override rewrites diagnostics by key before passing them on: disabled
// keys are dropped and severities remapped. Positions and arguments are
// never changed.
type Override struct {
	Next     Reporter
	Disabled map[string]bool
	Severity map[string]Severity
}

// NewOverride builds an Override from configuration values. Severity
// names are parsed with ParseSeverity; an unknown name is an error.
func NewOverride(next Reporter, disabled []string, severity map[string]string) (*Override, error) {
	o := &Override{
		Next:     next,
		Disabled: make(map[string]bool, len(disabled)),
		Severity: make(map[string]Severity, len(severity)),
	}
	for _, k := range disabled {
		o.Disabled[k] = true
	}
	for k, v := range severity {
		s, ok := ParseSeverity(v)
		if !ok {
			return nil, fmt.Errorf("unknown severity %q for %s", v, k)
		}
		o.Severity[k] = s
	}
	return o, nil
}

// Report forwards d unless its key is disabled.
func (o *Override) Report(d Diagnostic) {
	if o.Disabled[d.Key] {
		return
	}
	if s, ok := o.Severity[d.Key]; ok {
		d.Severity = s
	}
	if o.Next != nil {
		o.Next.Report(d)
	}
}
