package openapi

// NewComponents creates a Components registry seeded with the shared
// pagination schema and the common error responses domains reference.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Description: "Page number (1-based)"},
					"page_size": {Type: "integer", Description: "Items per page"},
					"search":    {Type: "string", Description: "Search term"},
					"sort": {
						Type:  "array",
						Items: SchemaRef("SortField"),
					},
				},
			},
			"SortField": {
				Type: "object",
				Properties: map[string]*Schema{
					"field":      {Type: "string"},
					"descending": {Type: "boolean"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": {Description: "Invalid request"},
			"NotFound":   {Description: "Resource not found"},
			"Conflict":   {Description: "Request conflicts with current state"},
		},
	}
}

// AddSchemas merges schemas into the registry without overwriting
// existing entries.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		if _, ok := c.Schemas[name]; !ok {
			c.Schemas[name] = schema
		}
	}
}

// AddResponses merges responses into the registry without overwriting
// existing entries.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, response := range responses {
		if _, ok := c.Responses[name]; !ok {
			c.Responses[name] = response
		}
	}
}
