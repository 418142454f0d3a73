package domain

import "errors"

// ErrCatalogEmpty indicates the item catalog holds no entries. Whether it is
// reported as an error is a configuration choice (CATALOG_EMPTY_IS_ERROR).
var ErrCatalogEmpty = errors.New("no stored items found")
