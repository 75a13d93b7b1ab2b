package server

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// saveUpload stores one uploaded file under the configured upload directory
// with a random name, preserving the extension, and returns the stored
// reference relative to the server root.
func (s *Server) saveUpload(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	dir := "./uploads"
	if s.config != nil && s.config.UploadDir != "" {
		dir = s.config.UploadDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	path := filepath.Join(dir, name)
	if err := c.SaveFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

// saveUploads stores every file in the slice and returns their references.
func (s *Server) saveUploads(c *fiber.Ctx, files []*multipart.FileHeader) ([]string, error) {
	refs := make([]string, 0, len(files))
	for _, file := range files {
		ref, err := s.saveUpload(c, file)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
