// Package errs provides the error taxonomy used across the uploader.
//
// Every backend failure is caught at the operation boundary and wrapped into
// an *errs.Error carrying one of the Kind values. Callers inspect errors with
// the Is* predicates and never need to import minio types.
//
// # Usage
//
//	// In the uploader, wrap backend errors:
//	return errs.Wrap(errs.KindUpload, "upload failed", err)
//
//	// In a handler, check the kind:
//	if errs.IsInvalidArgument(err) {
//	    return c.Status(fiber.StatusBadRequest).JSON(...)
//	}
package errs
