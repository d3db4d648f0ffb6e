package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"regexp"
	"strings"

	"foodgram/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20

var imageFormat = regexp.MustCompile(`^[a-z0-9]+$`)

// imageExtensions lists the accepted raster types and the extension their
// files are stored under.
var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// Image is an uploaded recipe picture, not yet stored.
type Image struct {
	Name        string
	Data        []byte
	ContentType string
}

// Ext is the file extension of the image name, without the dot.
func (i *Image) Ext() string {
	return strings.TrimPrefix(path.Ext(i.Name), ".")
}

// DecodeImage reads a data URI of the form data:image/<ext>;base64,<payload>.
// The decoded file is named temp.<ext>.
func DecodeImage(raw string) (*Image, error) {
	rest, ok := strings.CutPrefix(raw, "data:image/")
	if !ok {
		return nil, models.ErrorValidation{Field: "image", Message: "must be a base64 encoded data:image URI"}
	}

	ext, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return nil, models.ErrorValidation{Field: "image", Message: "missing base64 payload"}
	}
	ext = strings.ToLower(ext)
	if !imageFormat.MatchString(ext) {
		return nil, models.ErrorValidation{Field: "image", Message: "missing image format"}
	}
	// Padding can make DecodedLen overshoot by two bytes.
	if base64.StdEncoding.DecodedLen(len(payload)) > maxImageSize+2 {
		return nil, models.ErrorValidation{Field: "image", Message: "image is too large"}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, models.ErrorValidation{Field: "image", Message: "invalid base64 payload"}
	}
	return newImage("temp."+ext, data)
}

// ImageFromFile reads a multipart image part.
func ImageFromFile(file *multipart.FileHeader) (*Image, error) {
	if file.Size > maxImageSize {
		return nil, models.ErrorValidation{Field: "image", Message: "image is too large"}
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return nil, err
	}
	return newImage(path.Base(file.Filename), data)
}

func newImage(name string, data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, models.ErrorValidation{Field: "image", Message: "image is empty"}
	}
	if len(data) > maxImageSize {
		return nil, models.ErrorValidation{Field: "image", Message: "image is too large"}
	}

	mtype := mimetype.Detect(data)
	contentType := strings.SplitN(mtype.String(), ";", 2)[0]
	if _, ok := imageExtensions[contentType]; !ok {
		return nil, models.ErrorValidation{
			Field:   "image",
			Message: fmt.Sprintf("unsupported content type %s", contentType),
		}
	}

	img := &Image{Name: name, Data: data, ContentType: contentType}
	if img.Ext() == "" {
		img.Name += mtype.Extension()
	}
	return img, nil
}

// imageKey returns a fresh storage key for img. The extension follows the
// sniffed content type, not the name the client sent.
func imageKey(img *Image) string {
	ext, ok := imageExtensions[img.ContentType]
	if !ok {
		ext = "img"
	}
	return path.Join("recipes", uuid.NewString()+"."+ext)
}
