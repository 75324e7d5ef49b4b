package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BindBody decodes the request body into obj. JSON and url-encoded form
// bodies are accepted; an empty body binds as an empty object. On failure the
// error envelope has already been written and false is returned.
func BindBody(c *gin.Context, obj any) bool {
	if err := bindBody(c, obj); err != nil {
		HandleAPIError(c, err)
		return false
	}
	return true
}

func bindBody(c *gin.Context, obj any) error {
	if c.ContentType() == binding.MIMEPOSTForm {
		if err := c.Request.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
		}
		fields := make(map[string]string, len(c.Request.PostForm))
		for key := range c.Request.PostForm {
			fields[key] = c.Request.PostForm.Get(key)
		}
		data, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
		}
		return decodeJSON(data, obj)
	}

	if c.Request.Body == nil {
		return nil
	}
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return decodeJSON(data, obj)
}

func decodeJSON(data []byte, obj any) error {
	if err := json.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
	}
	return nil
}
