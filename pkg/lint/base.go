package lint

import "github.com/beatrizserrano/training-material/pkg/config"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override Apply.
//
// Fields are unexported to avoid stutter and name collisions with interface
// methods. Use NewBaseRule.
type BaseRule struct {
	code     string
	name     string
	desc     string
	severity config.Severity
	kinds    []FileKind
	fixable  bool
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(code, name, desc string, severity config.Severity, kinds []FileKind, fixable bool) BaseRule {
	return BaseRule{
		code:     code,
		name:     name,
		desc:     desc,
		severity: severity,
		kinds:    kinds,
		fixable:  fixable,
	}
}

// Code returns the stable diagnostic code for this rule.
func (r *BaseRule) Code() string {
	return r.code
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultSeverity returns the default severity for this rule.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return r.severity
}

// Kinds returns the file kinds this rule applies to.
func (r *BaseRule) Kinds() []FileKind {
	return r.kinds
}

// CanFix returns whether this rule proposes replacements.
func (r *BaseRule) CanFix() bool {
	return r.fixable
}

// Apply must be overridden by concrete rule implementations.
func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) {
	return nil, nil
}
