package models

type CPContext string

const (
	// ContextURL is the context key for the base URL the API is reachable at.
	ContextURL CPContext = "crewplan-url"
)
