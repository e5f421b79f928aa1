// Package native resolves exported functions from platform specific shared
// libraries without CGO.
//
// Callers describe what they need as a Manifest: for each function, the
// platforms it applies to, the candidate library names to try in order, an
// optional symbol name and whether the function is required. BindAll walks
// the manifest, loads each library at most once per name, and writes the
// resolved addresses into the supplied destinations:
//
//	var strlen func(string) int
//	var qsortR native.Function
//
//	err := native.BindAll(native.Manifest{
//		{Identifier: "strlen", Request: native.Request(native.Linux|native.BSD, "libc.so.6", "libc.so"), Target: &strlen},
//		{Identifier: "qsort_r", Request: native.Request(native.Linux, "libc.so.6").Optional(), Target: &qsortR},
//	})
//
// Bindings for other platforms are skipped, optional bindings that cannot be
// resolved leave a nil address, and a missing required binding stops BindAll
// with a *NotFoundError. FreeAll unloads every cached library.
package native
