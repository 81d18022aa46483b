package sessions

import "github.com/studynova/ingest/pkg/query"

var projection = query.NewProjectionMap("public", "sessions", "s").
	Project("id", "Id").
	Project("filename", "Filename").
	Project("board", "Board").
	Project("class", "Class").
	Project("subject", "Subject").
	Project("chapter", "Chapter").
	Project("status", "Status").
	Project("stage", "Stage").
	Project("stage_progress", "StageProgress").
	Project("overall_progress", "OverallProgress").
	Project("message", "Message").
	Project("total_records", "TotalRecords").
	Project("review_id", "ReviewId").
	Project("storage_key", "StorageKey").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
