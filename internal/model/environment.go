package model

// Environment is the deployment environment the service runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether internal error details must be hidden from clients.
func (e Environment) IsProduction() bool {
	return e == EnvironmentProduction
}
