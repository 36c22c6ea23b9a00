package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/pradana/tracerstudy/internal/pkg/logger"
)

// proofSubdir is the subdirectory holding proof-of-enrollment documents.
const proofSubdir = "bukti_kuliah"

// LocalStorage stores uploaded documents on the local filesystem and
// serves them through the static /uploads route.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath. baseURL is
// prepended to returned object keys to form public URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Join(basePath, proofSubdir), os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveProofDocument stores the document as bukti_kuliah/alumni_<id><ext>.
// The key is deterministic so a resubmission replaces the earlier upload
// instead of accumulating copies.
func (ls *LocalStorage) SaveProofDocument(fileHeader *multipart.FileHeader, alumniID int64) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	key := fmt.Sprintf("%s/alumni_%d%s", proofSubdir, alumniID, ext)
	dstPath := filepath.Join(ls.basePath, proofSubdir, fmt.Sprintf("alumni_%d%s", alumniID, ext))

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	publicURL := ls.baseURL + "/" + key
	logger.Info().Str("filename", fileHeader.Filename).Str("key", key).Msg("Proof document saved")
	return publicURL, nil
}

// DeleteFile removes a stored object given its public URL. Missing objects
// are treated as already deleted.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	filename := filepath.Base(fileURL)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file URL: %s", fileURL)
	}

	physicalPath := filepath.Join(ls.basePath, proofSubdir, filename)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
