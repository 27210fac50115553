package entity

import "time"

// Image is the avatar asset owned 1:1 by a user. Avatar changes mutate the
// existing row in place instead of creating a new one.
type Image struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TempUpload is an ephemeral file registration scoped to the uploading user.
// Callers replace the whole set (delete all, then recreate) rather than
// versioning individual rows.
type TempUpload struct {
	ID           string    `json:"id"`
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	UploadedByID string    `json:"uploaded_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}
