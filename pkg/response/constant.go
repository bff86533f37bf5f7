package response

const (
	DefaultErrorMessage  = "Internal Server Error"
	MessageRouteNotFound = "Route not found"
)
