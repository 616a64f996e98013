package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

const (
	UUID_PREFIX_COMPANY      = "comp"
	UUID_PREFIX_CUSTOMER     = "cust"
	UUID_PREFIX_PRODUCT      = "prod"
	UUID_PREFIX_INVOICE      = "inv"
	UUID_PREFIX_INVOICE_LINE = "line"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex inv_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
