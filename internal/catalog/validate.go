// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/bookfinder/pkg/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their catalog file key, not the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateBooks checks every record and reports the first invalid one by its
// 1-based position in the catalog.
func validateBooks(books []types.BookRecord) error {
	for i := range books {
		if err := validate.Struct(&books[i]); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				msgs := make([]string, 0, len(verrs))
				for _, fe := range verrs {
					msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
				}
				return fmt.Errorf("book %d: %s", i+1, strings.Join(msgs, ", "))
			}
			return fmt.Errorf("book %d: %w", i+1, err)
		}
	}
	return nil
}
