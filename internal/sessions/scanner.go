package sessions

import "github.com/studynova/ingest/pkg/repository"

func scanSession(s repository.Scanner) (Session, error) {
	var sn Session
	err := s.Scan(
		&sn.ID,
		&sn.Filename,
		&sn.Metadata.Board,
		&sn.Metadata.Class,
		&sn.Metadata.Subject,
		&sn.Metadata.Chapter,
		&sn.Status,
		&sn.Stage,
		&sn.StageProgress,
		&sn.OverallProgress,
		&sn.Message,
		&sn.TotalRecords,
		&sn.ReviewID,
		&sn.StorageKey,
		&sn.CreatedAt,
		&sn.UpdatedAt,
	)
	return sn, err
}
