package domain

// EnvReport classifies a set of requirements against the environment.
type EnvReport struct {
	Set             []string            `json:"set"`
	MissingRequired []EnvVarRequirement `json:"missing_required"`
	MissingOptional []EnvVarRequirement `json:"missing_optional"`
}

// OK reports whether every required variable is set.
func (r *EnvReport) OK() bool { return len(r.MissingRequired) == 0 }

// MissingNames returns the names of the missing required variables.
func (r *EnvReport) MissingNames() []string {
	names := make([]string, 0, len(r.MissingRequired))
	for _, v := range r.MissingRequired {
		names = append(names, v.Name)
	}
	return names
}

// Integration environment check statuses.
const (
	StatusOK               = "ok"
	StatusMissingVariables = "missing_variables"
	StatusNotFound         = "not_found"
)

// IntegrationEnvReport is the result of checking one integration's variables.
type IntegrationEnvReport struct {
	Status        string            `json:"status"`
	Integration   IntegrationRecord `json:"integration"`
	Category      Category          `json:"category"`
	WebCompatible bool              `json:"web_compatible"`
	Env           EnvReport         `json:"env"`
	Warnings      []string          `json:"warnings,omitempty"`
}
