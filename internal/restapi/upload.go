package restapi

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// saveUpload persists the "image" multipart file, when present, under a
// randomized filename and returns the absolute URL it will be served at.
// A request without a file part returns empty values and no error.
func (h *ProductAPI) saveUpload(c echo.Context) (publicURL, filename string, err error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// no file part (or not a multipart request)
		return "", "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", errors.Wrap(err, "open uploaded image")
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", "", errors.Wrap(err, "create upload dir")
	}

	filename = uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(h.uploadDir, filename))
	if err != nil {
		return "", "", errors.Wrap(err, "create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", "", errors.Wrap(err, "write upload file")
	}

	publicURL = fmt.Sprintf("%s://%s/uploads/%s", c.Scheme(), c.Request().Host, filename)
	return publicURL, filename, nil
}

// removeUpload undoes a file save after a failed row write so the
// upload directory does not accumulate orphans.
func (h *ProductAPI) removeUpload(filename string) {
	if filename == "" {
		return
	}
	os.Remove(filepath.Join(h.uploadDir, filename))
}
