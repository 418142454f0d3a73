package uploads

import "strings"

// Resolver maps a stored image reference to its public URL.
type Resolver struct {
	base string
}

// NewResolver returns a Resolver rooted at baseURL, e.g. "http://host:3333/uploads".
func NewResolver(baseURL string) Resolver {
	return Resolver{base: strings.TrimRight(baseURL, "/")}
}

// URL joins the base address and ref. An empty ref yields a URL ending in "/";
// callers never pass one since image is required on every stored row.
func (r Resolver) URL(ref string) string {
	return r.base + "/" + ref
}
