package resumes

import "time"

// Resume is the metadata record for one uploaded resume file. The file on
// disk is the source of truth for existence; this record annotates it.
type Resume struct {
	ID         string // record id
	FileID     string // generated stored filename, the public identifier
	FileName   string // original upload name
	MimeType   string
	SizeBytes  int64
	UploadedAt time.Time
}
