package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Veraticus/wardrobe/internal/common"
	"github.com/Veraticus/wardrobe/internal/model"
)

// MaxUploadSize is the largest image the backend accepts.
const MaxUploadSize = 10 << 20

type uploadData struct {
	Item           *model.WardrobeItem      `json:"item"`
	Classification model.ItemClassification `json:"classification"`
}

// CheckImage validates an image before upload and returns its content type.
func CheckImage(data []byte) (string, error) {
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", common.ErrFileTooLarge, len(data), MaxUploadSize)
	}
	contentType := mimetype.Detect(data).String()
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: detected %s", common.ErrNotAnImage, contentType)
	}
	return contentType, nil
}

// UploadItem sends an image to the backend, which classifies it and adds it to the wardrobe.
func (c *Client) UploadItem(ctx context.Context, upload model.Upload) (*model.UploadResult, error) {
	if upload.Content == nil {
		return nil, fmt.Errorf("%w: no image content", common.ErrNotAnImage)
	}

	data, err := io.ReadAll(io.LimitReader(upload.Content, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	contentType, err := CheckImage(data)
	if err != nil {
		return nil, err
	}

	body, formType, err := buildUploadForm(upload, data, contentType)
	if err != nil {
		return nil, err
	}

	var reader io.Reader = bytes.NewReader(body)
	if upload.Progress != nil {
		reader = io.TeeReader(reader, upload.Progress)
	}

	env, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/wardrobe/upload",
		body:        reader,
		contentType: formType,
		size:        int64(len(body)),
	})
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	var payload uploadData
	if err := env.decodeData(&payload); err != nil {
		return nil, err
	}

	result := &model.UploadResult{Classification: payload.Classification}
	if payload.Item != nil {
		result.Item = *payload.Item
	}

	c.logger.Info("uploaded item",
		"name", result.Item.Name,
		"category", result.Item.Category,
		"method", result.Classification.Method)
	return result, nil
}

// UploadSize returns the encoded size of an upload form, for progress reporting.
func UploadSize(upload model.Upload, data []byte) int64 {
	body, _, err := buildUploadForm(upload, data, mimetype.Detect(data).String())
	if err != nil {
		return int64(len(data))
	}
	return int64(len(body))
}

func buildUploadForm(upload model.Upload, data []byte, contentType string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("name", upload.DisplayName()); err != nil {
		return nil, "", fmt.Errorf("failed to write form: %w", err)
	}

	fileName := filepath.Base(upload.FileName)
	if fileName == "." || fileName == "/" || fileName == "" {
		fileName = "image"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, fileName))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to write form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to write form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to write form: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
