package filestorage

import "mime/multipart"

// FileStorage is the store/retrieve-by-key abstraction over binary object
// storage. Implementations return a publicly reachable URL for each
// stored object.
type FileStorage interface {
	// SaveProofDocument stores an uploaded proof-of-enrollment document
	// under a key derived from the alumni identifier and returns its
	// public URL. A resubmission for the same alumnus overwrites the
	// previous document.
	SaveProofDocument(fileHeader *multipart.FileHeader, alumniID int64) (string, error)

	// DeleteFile removes a stored object by its public URL. Deleting a
	// missing object is not an error.
	DeleteFile(fileURL string) error
}
