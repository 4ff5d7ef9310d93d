package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

// openAPIDoc serves a pre-rendered document to the swag registry.
type openAPIDoc string

func (d openAPIDoc) ReadDoc() string {
	return string(d)
}

// registerDocs exposes the OpenAPI document at /swagger/doc.json and the Swagger UI
// under /swagger/. The swag registry is global, so the document is registered once
// per process.
func registerDocs(e *echo.Echo, doc *openapi3.T) error {
	rendered, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc(rendered))
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
