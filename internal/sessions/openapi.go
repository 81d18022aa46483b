package sessions

import "github.com/studynova/ingest/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Upload *openapi.Operation
	Cancel *openapi.Operation
	Delete *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List sessions",
		Description: "List ingestion sessions with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in filename and chapter", false),
			openapi.QueryParam("status", "string", "Filter by status (exact)", false),
			openapi.QueryParam("board", "string", "Filter by board (contains)", false),
			openapi.QueryParam("class", "string", "Filter by class (contains)", false),
			openapi.QueryParam("subject", "string", "Filter by subject (contains)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Sessions list", "SessionPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find session",
		Description: "Find session by ID; poll during processing for progress",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Session ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session details", "Session"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Upload: &openapi.Operation{
		Summary:     "Start session",
		Description: "Upload a PDF with chapter metadata and start background processing",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"file":    {Type: "string", Description: "PDF file to process"},
							"board":   {Type: "string", Description: "Education board"},
							"class":   {Type: "string", Description: "Class level"},
							"subject": {Type: "string", Description: "Subject name"},
							"chapter": {Type: "string", Description: "Chapter name"},
						},
						Required: []string{"file", "board", "class", "subject", "chapter"},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			202: openapi.ResponseJSON("Session accepted", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			413: {Description: "File too large"},
		},
	},
	Cancel: &openapi.Operation{
		Summary:     "Cancel session",
		Description: "Stop a running session; the session finalizes as failed",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Session ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session cancelled", "Session"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete session",
		Description: "Delete a finished session and its stored upload",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Session ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Session deleted"},
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Session": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":               {Type: "string", Format: "uuid"},
				"filename":         {Type: "string", Description: "Original filename"},
				"metadata":         openapi.SchemaRef("ChapterMetadata"),
				"status":           {Type: "string", Description: "processing, completed or failed"},
				"stage":            {Type: "string", Description: "Current pipeline stage"},
				"stage_progress":   {Type: "integer", Description: "Stage-local progress 0-100"},
				"overall_progress": {Type: "integer", Description: "Weighted overall progress 0-100"},
				"message":          {Type: "string", Description: "Latest progress or error message"},
				"total_records":    {Type: "integer", Description: "Records produced (terminal only)"},
				"review_id":        {Type: "string", Format: "uuid", Description: "Pending review (on completion)"},
				"storage_key":      {Type: "string", Description: "Storage location of the upload"},
				"created_at":       {Type: "string", Format: "date-time"},
				"updated_at":       {Type: "string", Format: "date-time"},
			},
		},
		"ChapterMetadata": {
			Type:     "object",
			Required: []string{"board", "class", "subject", "chapter"},
			Properties: map[string]*openapi.Schema{
				"board":   {Type: "string"},
				"class":   {Type: "string"},
				"subject": {Type: "string"},
				"chapter": {Type: "string"},
			},
		},
		"SessionPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Session")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
