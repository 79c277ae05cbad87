package validators

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-asset-keeper/internal/catalog"
	"github.com/MKhiriev/go-asset-keeper/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldName  = "asset_name"
	FieldType  = "asset_type"
	FieldClass = "asset_class"
)

const (
	tagAssetName  = "asset_name"
	tagAssetType  = "asset_type"
	tagAssetClass = "asset_class"
)

// AssetNameClass is the character class of a valid asset name: letters and
// digits of any script, underscore and hyphen.
const AssetNameClass = `[\p{L}\p{N}_\-]{4,64}`

var assetNamePattern = regexp.MustCompile(`^` + AssetNameClass + `$`)

// IsValidAssetName reports whether name is 4 to 64 word characters or hyphens.
func IsValidAssetName(name string) bool {
	return assetNamePattern.MatchString(name)
}

// AssetValidator checks the shape of a single asset record against the
// catalog. It runs every rule and reports all violations as [FieldErrors]:
//  1. name format
//  2. type membership
//  3. class allowed for the type (skipped when the type is unknown)
type AssetValidator struct {
	catalog  *catalog.Catalog
	validate *validator.Validate
}

func NewAssetValidator(c *catalog.Catalog) *AssetValidator {
	v := &AssetValidator{
		catalog:  c,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	v.validate.RegisterTagNameFunc(jsonFieldName)
	// registration only fails for empty tags or nil funcs
	_ = v.validate.RegisterValidation(tagAssetName, v.validateName)
	_ = v.validate.RegisterValidation(tagAssetType, v.validateType)
	v.validate.RegisterStructValidation(v.validateClass, models.Asset{})

	return v
}

func (v *AssetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var asset models.Asset
	switch value := obj.(type) {
	case models.Asset:
		asset = value
	case *models.Asset:
		if value == nil {
			return ErrUnsupportedType
		}
		asset = *value
	default:
		return ErrUnsupportedType
	}

	for _, f := range fields {
		if f != FieldName && f != FieldType && f != FieldClass {
			return ErrUnknownField
		}
	}

	err := v.validate.StructCtx(ctx, asset)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrs := make(FieldErrors, 0, len(validationErrs))
	for _, ve := range validationErrs {
		fe := toFieldError(ve)
		if len(fields) > 0 && !slices.Contains(fields, fe.Field) {
			continue
		}
		fieldErrs = append(fieldErrs, fe)
	}
	if len(fieldErrs) == 0 {
		return nil
	}

	return fieldErrs
}

func toFieldError(ve validator.FieldError) FieldError {
	switch ve.Tag() {
	case tagAssetName:
		return NewFieldError(FieldName, ErrNameFormat)
	case tagAssetType:
		value, _ := ve.Value().(models.AssetType)
		return newInvalidTypeChoiceError(string(value))
	case tagAssetClass:
		return NewFieldError(FieldClass, ErrInvalidClass)
	default:
		return FieldError{Field: ve.Field(), Message: ve.Error(), Err: ve}
	}
}

func (v *AssetValidator) validateName(fl validator.FieldLevel) bool {
	return IsValidAssetName(fl.Field().String())
}

func (v *AssetValidator) validateType(fl validator.FieldLevel) bool {
	return v.catalog.IsValidType(models.AssetType(fl.Field().String()))
}

// validateClass runs after the field rules. An unknown type has already been
// reported, so the class is only checked against a known type.
func (v *AssetValidator) validateClass(sl validator.StructLevel) {
	asset := sl.Current().Interface().(models.Asset)
	if !v.catalog.IsValidType(asset.Type) {
		return
	}
	if !v.catalog.IsValidClass(asset.Type, asset.Class) {
		sl.ReportError(asset.Class, FieldClass, "Class", tagAssetClass, "")
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
