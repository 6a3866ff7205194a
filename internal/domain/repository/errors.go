package repository

import "storefront/internal/errors"

// ErrConstraintViolated marks backend validation rejections (unique, check,
// not-null violations). The façade surfaces these to the caller verbatim;
// only transport failures trigger local-store fallback.
var ErrConstraintViolated = errors.New("constraint violated")
