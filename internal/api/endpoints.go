package api

const (
	// BaseURL is the base URL for the OxonTime real-time feed
	BaseURL = "https://oxontime.com"

	// EndpointDepartureBoard returns the departure board for a stop.
	// The NaPTAN stop code is appended as a path segment.
	EndpointDepartureBoard = "/pwi/departureBoard/"
)
