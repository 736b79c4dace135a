// Package mailto assembles percent-encoded mailto URIs.
//
// Build produces links of the form
//
//	mailto:<recipient>?subject=<enc>&body=<enc>[&cc=<enc>]
//
// Every query value is encoded per the RFC 3986 component rules: only
// unreserved characters (A-Z, a-z, 0-9, "-", ".", "_", "~") pass
// through, everything else becomes %XX with uppercase hex. Spaces are
// %20 (never "+"), line breaks are %0A or %0D%0A exactly as they appear
// in the input. Decoding the values with standard percent-decoding
// yields the original strings back.
//
//	href, err := mailto.Build("john@example.com", mailto.Params{
//		Subject: "Greetings",
//		Body:    "Hello John, this is a test.",
//	})
package mailto
