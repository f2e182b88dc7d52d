package http

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var errMissingCoordinate = errs.NewValueIsRequiredError("latitude and longitude")

// pathUUID binds a required uuid path parameter the way generated oapi-codegen servers do.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(raw[:])
}

// optionalQueryUUID returns nil when the parameter is absent.
func optionalQueryUUID(c echo.Context, name string) (*kernel.UUID, error) {
	var raw *openapi_types.UUID
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &raw); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// optionalQueryPoint reads lat and lon. Both or neither must be given.
func optionalQueryPoint(c echo.Context) (*kernel.Location, error) {
	var lat, lon *float64
	if err := runtime.BindQueryParameter("form", true, false, "lat", c.QueryParams(), &lat); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("lat", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "lon", c.QueryParams(), &lon); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("lon", err)
	}

	switch {
	case lat == nil && lon == nil:
		return nil, nil
	case lat == nil || lon == nil:
		return nil, errMissingCoordinate
	}

	point, err := kernel.NewLocation(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func optionalQueryInt(c echo.Context, name string) (int, error) {
	var value *int
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if value == nil {
		return 0, nil
	}
	return *value, nil
}

func parseUUID(param, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}
