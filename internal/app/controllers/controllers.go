// Package controllers holds the gin handlers of the gateway. Each handler
// reads its parameters, calls one service operation and writes the
// {success, key} envelope.
package controllers

import (
	"net/http"

	"github.com/akademik/akademik/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
)

// ok writes a success envelope, optionally with one data key
func ok(ctx *gin.Context, key string, value any) {
	body := gin.H{"success": true}
	if key != "" {
		body[key] = value
	}
	ctx.JSON(http.StatusOK, body)
}

// pathID reads an integer path parameter
func pathID(ctx *gin.Context, name string) any {
	return helpers.LeadingInt(ctx.Param(name))
}

// queryOrNull returns the query value, or nil when it is missing or empty
func queryOrNull(ctx *gin.Context, name string) any {
	v := helpers.GetContentNullString(ctx.Query(name))
	if !v.Valid {
		return nil
	}
	return v.String
}

// queryRaw returns the query value as sent, or nil when it is missing
func queryRaw(ctx *gin.Context, name string) any {
	v, exists := ctx.GetQuery(name)
	if !exists {
		return nil
	}
	return v
}
