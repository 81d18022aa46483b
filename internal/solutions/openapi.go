package solutions

import "github.com/studynova/ingest/pkg/openapi"

type spec struct {
	List    *openapi.Operation
	Find    *openapi.Operation
	Records *openapi.Operation
	Export  *openapi.Operation
	Delete  *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List solutions",
		Description: "List published solutions with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in chapter and filename", false),
			openapi.QueryParam("board", "string", "Filter by board (contains)", false),
			openapi.QueryParam("class", "string", "Filter by class (contains)", false),
			openapi.QueryParam("subject", "string", "Filter by subject (contains)", false),
			openapi.QueryParam("tier", "string", "Filter by tier (exact)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Solutions list", "SolutionPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find solution",
		Description: "Find published solution by ID",
		Parameters: []*openapi.Parameter{
			openapi.StringPathParam("id", "Solution ID (chapter slug)"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Solution details", "Solution"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Records: &openapi.Operation{
		Summary:     "Solution records",
		Description: "Return the question-answer records of a published solution",
		Parameters: []*openapi.Parameter{
			openapi.StringPathParam("id", "Solution ID (chapter slug)"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Question-answer records", "RecordList"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Export: &openapi.Operation{
		Summary:     "Export solution",
		Description: "Download the solution as an XLSX workbook",
		Parameters: []*openapi.Parameter{
			openapi.StringPathParam("id", "Solution ID (chapter slug)"),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "XLSX workbook"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete solution",
		Description: "Delete a published solution and its JSONL artifact",
		Parameters: []*openapi.Parameter{
			openapi.StringPathParam("id", "Solution ID (chapter slug)"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Solution deleted"},
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Solution": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":              {Type: "string", Description: "Chapter slug identifier"},
				"filename":        {Type: "string", Description: "Source document filename"},
				"metadata":        openapi.SchemaRef("ChapterMetadata"),
				"qa_pairs":        {Type: "array", Items: openapi.SchemaRef("Record")},
				"total_questions": {Type: "integer"},
				"tier":            {Type: "string", Description: "pro or free"},
				"storage_key":     {Type: "string", Description: "JSONL artifact location"},
				"approved_at":     {Type: "string", Format: "date-time"},
			},
		},
		"Record": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"question":      {Type: "string"},
				"answer":        {Type: "string"},
				"record_number": {Type: "integer", Description: "Stable 1-based number; gaps allowed"},
				"confidence":    {Type: "number", Description: "Extraction confidence 0-1"},
				"extracted_at":  {Type: "string", Format: "date-time"},
				"updated_at":    {Type: "string", Format: "date-time", Description: "Present when edited"},
			},
		},
		"RecordList": {
			Type:  "array",
			Items: openapi.SchemaRef("Record"),
		},
		"SolutionPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Solution")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
