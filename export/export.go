package export

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// FormatCSV renders the register as comma-separated values.
	FormatCSV = "csv"
	// FormatGeoJSON renders the register as a GeoJSON FeatureCollection.
	FormatGeoJSON = "geojson"
)

const (
	ContentTypeCSV     = "text/csv"
	ContentTypeGeoJSON = "application/geo+json"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Config carries the requested export format.
type Config struct {
	Format string `json:"format" validate:"required,oneof=csv geojson"`
}

// Validate will check whether the requested format is supported.
func (cfg *Config) Validate() error {
	err := validate.Struct(cfg)
	if err != nil {
		errs := err.(validator.ValidationErrors)
		errStrs := []string{}
		for _, e := range errs {
			if e.Tag() == "oneof" {
				errStrs = append(errStrs, fmt.Sprintf("error format \"%s\" for key \"%s\" not recognized, only support \"%s\"", e.Value(), e.Field(), e.Param()))
				continue
			}
			if e.Tag() == "required" {
				errStrs = append(errStrs, fmt.Sprintf("%s is required", e.Field()))
				continue
			}
			errStrs = append(errStrs, e.Error())
		}
		return errors.New(strings.Join(errStrs, " and "))
	}
	return err
}

// ContentType returns the media type served for format.
func ContentType(format string) string {
	if format == FormatGeoJSON {
		return ContentTypeGeoJSON
	}
	return ContentTypeCSV
}

// Filename suggests a download name for an export taken at ts.
func Filename(format string, ts time.Time) string {
	return fmt.Sprintf("spatial-assets-%s.%s", ts.UTC().Format("20060102-150405"), format)
}
