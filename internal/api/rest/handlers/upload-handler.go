package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	pkgutils "github.com/tyforge/launchpad-backend/pkg/utils"
)

// readUpload pulls one multipart file out of the request, bounded by
// maxSize.
func readUpload(ctx *fiber.Ctx, field string, maxSize int64) (string, []byte, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return "", nil, apperr.ValidationField(field, "file is required")
	}
	if fh.Size > maxSize {
		return "", nil, apperr.ValidationField(field, "file is too large")
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, apperr.ValidationField(field, "could not read file")
	}
	defer f.Close()

	data, err := pkgutils.ReadAllLimit(f, maxSize)
	if err != nil {
		return "", nil, apperr.ValidationField(field, "file is too large")
	}
	return fh.Filename, data, nil
}

func queryInt(ctx *fiber.Ctx, key string, def int) int {
	v := ctx.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
