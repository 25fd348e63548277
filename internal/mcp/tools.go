package mcp

// getAllTools returns the tool definitions exposed by this server.
func getAllTools() []Tool {
	localeProperty := map[string]any{
		"type":        "string",
		"description": "API locale (default: de-de). Use en-us for English results.",
	}

	return []Tool{
		{
			Name: "search_events",
			Description: "Search Microsoft Events with optional filters and free-text query. " +
				"Call list_filters first to discover the available filter categories and their " +
				"exact values; filter values must match exactly (e.g. \"dynamics-365\", not \"dynamics\"). " +
				"Returns the total count and the list of events with title, dates, location, and link.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"filters": map[string]any{
						"type":        "string",
						"description": "Comma-separated filter string, e.g. \"topic:ai,product:dynamics-365,format:digital\". Use list_filters to get all available category:value pairs.",
					},
					"query": map[string]any{
						"type":        "string",
						"description": "Optional free-text search query.",
					},
					"locale": localeProperty,
				},
			},
		},
		{
			Name: "get_event_details",
			Description: "Get details for a specific event by its ID (from search_events results). " +
				"Returns full event details including the raw content object, or a structured " +
				"error field if the event is not found.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"event_id": map[string]any{
						"type":        "string",
						"description": "The event ID (from search_events results).",
					},
					"locale": localeProperty,
				},
				"required": []string{"event_id"},
			},
		},
		{
			Name: "list_filters",
			Description: "List all available filter categories and their exact values with event counts. " +
				"Call this before search_events or get_event_stats with filters: it returns the exact " +
				"category:value pairs the API accepts (e.g. topic, product, format, region, audience, " +
				"industry, primary-language).",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"locale": localeProperty,
				},
			},
		},
		{
			Name: "get_event_stats",
			Description: "Get statistics about events: counts by format, topic, product, region, etc. " +
				"Uses the API facets for fast, accurate counts (single API call). Use list_filters " +
				"first to discover valid filter values.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"filters": map[string]any{
						"type":        "string",
						"description": "Optional comma-separated filter string, e.g. \"topic:ai\". Use list_filters to get all available category:value pairs.",
					},
					"locale": localeProperty,
				},
			},
		},
	}
}
