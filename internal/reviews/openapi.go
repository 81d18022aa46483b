package reviews

import "github.com/studynova/ingest/pkg/openapi"

type spec struct {
	List         *openapi.Operation
	Find         *openapi.Operation
	UpdateRecord *openapi.Operation
	AddRecord    *openapi.Operation
	RemoveRecord *openapi.Operation
	Decide       *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List reviews",
		Description: "List pending reviews with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in filename and chapter", false),
			openapi.QueryParam("board", "string", "Filter by board (contains)", false),
			openapi.QueryParam("class", "string", "Filter by class (contains)", false),
			openapi.QueryParam("subject", "string", "Filter by subject (contains)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Reviews list", "ReviewPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find review",
		Description: "Find pending review by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Review ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Review details", "Review"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	UpdateRecord: &openapi.Operation{
		Summary:     "Update record",
		Description: "Replace the question and answer of one record; marks it edited",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Review ID"),
			openapi.IntPathParam("index", "Zero-based record index"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateRecordCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Review with updated record", "Review"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	AddRecord: &openapi.Operation{
		Summary:     "Add record",
		Description: "Append a placeholder record for immediate editing",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Review ID"),
		},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Review with appended record", "Review"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	RemoveRecord: &openapi.Operation{
		Summary:     "Remove record",
		Description: "Delete one record; remaining records keep their numbers",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Review ID"),
			openapi.IntPathParam("index", "Zero-based record index"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Review without the record", "Review"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Decide: &openapi.Operation{
		Summary:     "Decide review",
		Description: "Approve (publish) or reject (discard) the review; the review is removed either way",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Review ID"),
		},
		RequestBody: openapi.RequestBodyJSON("DecideCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Decision outcome", "Decision"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Review": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":              {Type: "string", Format: "uuid"},
				"session_id":      {Type: "string", Format: "uuid"},
				"filename":        {Type: "string", Description: "Source document filename"},
				"metadata":        openapi.SchemaRef("ChapterMetadata"),
				"qa_pairs":        {Type: "array", Items: openapi.SchemaRef("Record")},
				"total_questions": {Type: "integer", Description: "Always len(qa_pairs)"},
				"status":          {Type: "string", Description: "Always pending"},
				"version":         {Type: "integer", Description: "Increments on each record mutation"},
				"processed_at":    {Type: "string", Format: "date-time"},
				"updated_at":      {Type: "string", Format: "date-time"},
			},
		},
		"UpdateRecordCommand": {
			Type:     "object",
			Required: []string{"question", "answer"},
			Properties: map[string]*openapi.Schema{
				"question": {Type: "string"},
				"answer":   {Type: "string"},
			},
		},
		"DecideCommand": {
			Type:     "object",
			Required: []string{"approved", "version"},
			Properties: map[string]*openapi.Schema{
				"approved": {Type: "boolean"},
				"version":  {Type: "integer", Description: "Version the decision was based on"},
			},
		},
		"Decision": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"review_id":   {Type: "string", Format: "uuid"},
				"approved":    {Type: "boolean"},
				"solution_id": {Type: "string", Description: "Published solution ID (approvals only)"},
			},
		},
		"ReviewPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Review")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
