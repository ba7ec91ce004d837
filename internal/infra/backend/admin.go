package backend

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ImageField is the multipart field carrying the uploaded image.
const ImageField = "image"

func (c *Client) CreateProduct(ctx context.Context, draft *entity.ProductDraft) (*entity.Product, error) {
	return c.writeProduct(ctx, http.MethodPost, "/admin/product", draft)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, draft *entity.ProductDraft) (*entity.Product, error) {
	return c.writeProduct(ctx, http.MethodPut, "/admin/product/"+url.PathEscape(id), draft)
}

func (c *Client) writeProduct(ctx context.Context, method, path string, draft *entity.ProductDraft) (*entity.Product, error) {
	req, err := jsonRequest(method, path, draft)
	if err != nil {
		return nil, err
	}

	var payload productPayload
	if err := c.do(ctx, req, &payload); err != nil {
		return nil, err
	}

	return payload.toProduct()
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/admin/product/" + url.PathEscape(id)}, nil)
}

// UploadImage posts content as multipart field "image" and returns the
// hosted URL.
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(ImageField, filename)
	if err != nil {
		return "", errors.Wrap(err, "failed to create form file")
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", errors.Wrap(err, "failed to read image")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish multipart body")
	}

	req := request{
		method:      http.MethodPost,
		path:        "/admin/upload-image",
		body:        &buf,
		contentType: writer.FormDataContentType(),
	}

	var resp uploadImageResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return "", err
	}
	if resp.ImageURL == "" {
		return "", errors.New("upload-image response has no imageUrl")
	}

	return resp.ImageURL, nil
}
