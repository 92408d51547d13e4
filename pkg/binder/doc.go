// Package binder turns an HTTP request into validator.Params.
//
// Params picks the source from the request: JSON bodies
// (application/json, objects only), url-encoded and multipart forms, and the
// query string for body-less requests. Form fields with a single value become
// strings and repeated fields become []string; uploaded files are exposed as
// *multipart.FileHeader or []*multipart.FileHeader.
//
//	params, err := binder.Params(r)
//	if err != nil {
//		http.Error(w, err.Error(), http.StatusBadRequest)
//		return
//	}
//	err = schema.Validate(r.Context(), params, model.Create)
package binder
